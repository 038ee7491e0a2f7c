package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tailor-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	params llm.Params
}

// NewClient constructs a Gemini client. An empty API key is a hard error so
// that no request can ever be attempted without a credential.
func NewClient(ctx context.Context, apiKey, model string, params llm.Params) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is required", llm.ErrNotConfigured)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: LLM_MODEL is required for Gemini", llm.ErrNotConfigured)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init: %w", err)
	}
	return &Client{client: client, model: model, params: params}, nil
}

// Generate sends the prompt and returns the model's raw text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.params.Temperature),
		TopP:            genai.Ptr(c.params.TopP),
		TopK:            genai.Ptr(c.params.TopK),
		MaxOutputTokens: c.params.MaxOutputTokens,
		SafetySettings:  safetySettings(),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return text, nil
}

func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, cat := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  cat,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}

var _ llm.Client = (*Client)(nil)
