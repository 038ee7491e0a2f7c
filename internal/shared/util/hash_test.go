package util

import "testing"

func TestHashPrompt(t *testing.T) {
	prompt := "Analyze the following job description"
	got := HashPrompt(prompt)
	if got != HashPrompt(prompt) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestSanitizeFileName(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatal("expected traversal rejection")
	}
	got, err := SanitizeFileName("my resume/v2.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "my resume_v2.pdf" {
		t.Fatalf("unexpected sanitized name: %s", got)
	}
}
