package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"tailor-backend/internal/llm"
)

const apiURL = "https://openrouter.ai/api/v1/chat/completions"

// Client implements llm.Client against the OpenRouter chat-completions API.
type Client struct {
	apiKey string
	model  string
	params llm.Params
	http   *resty.Client
}

// NewClient constructs an OpenRouter client. An empty API key is a hard error
// so that no request can ever be attempted without a credential.
func NewClient(apiKey, model string, params llm.Params) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY is required", llm.ErrNotConfigured)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: LLM_MODEL is required for OpenRouter", llm.ErrNotConfigured)
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENROUTER_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		params: params,
		http:   resty.New().SetTimeout(timeout),
	}, nil
}

// Generate sends the prompt and returns the model's raw text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":       c.model,
			"temperature": c.params.Temperature,
			"top_p":       c.params.TopP,
			"max_tokens":  c.params.MaxOutputTokens,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(apiURL)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}

	body := resp.String()
	if apiErr := gjson.Get(body, "error.message"); apiErr.Exists() {
		return "", fmt.Errorf("openrouter error: %s", apiErr.String())
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode())
	}

	text := strings.TrimSpace(gjson.Get(body, "choices.0.message.content").String())
	if text == "" {
		return "", fmt.Errorf("openrouter response empty content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
