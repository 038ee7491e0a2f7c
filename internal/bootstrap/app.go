// Package bootstrap wires configuration, the model client and HTTP handlers
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/llm/gemini"
	"tailor-backend/internal/llm/openrouter"
	"tailor-backend/internal/mealplans"
	"tailor-backend/internal/resumes"
	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/server"
)

// App holds the constructed application graph.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	LLM      llm.Client
	Sessions *sessions.Service
}

// Build constructs the full dependency graph. It fails fast when the
// configured provider has no usable credential.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := sessions.NewMemoryRepo()
	sessionSvc := &sessions.Service{Repo: repo}

	router := server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Sessions:  sessions.NewHandler(sessionSvc),
		Resumes:   resumes.NewHandler(&resumes.Service{Repo: repo, LLM: client}),
		MealPlans: mealplans.NewHandler(&mealplans.Service{Repo: repo, LLM: client}),
	})

	return &App{
		Config:   cfg,
		Router:   router,
		LLM:      client,
		Sessions: sessionSvc,
	}, nil
}

func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	params := llm.Params{
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		TopK:            cfg.TopK,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}

	switch cfg.LLMProvider {
	case "openrouter":
		return openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.LLMModel, params)
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, params)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
