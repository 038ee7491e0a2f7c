package openrouter

import (
	"errors"
	"testing"

	"tailor-backend/internal/llm"
)

func TestNewClientRequiresCredential(t *testing.T) {
	if _, err := NewClient("", "openai/gpt-4o-mini", llm.DefaultParams()); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for empty api key, got %v", err)
	}
	if _, err := NewClient("sk-test", "", llm.DefaultParams()); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for empty model, got %v", err)
	}
	client, err := NewClient("sk-test", "openai/gpt-4o-mini", llm.DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
}
