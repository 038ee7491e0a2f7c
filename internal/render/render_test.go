package render

import (
	"strings"
	"testing"
)

func TestHTMLRendersHeadingsAndBullets(t *testing.T) {
	text := "# Professional Summary\n\n- Led a team of 5\n- Shipped **Go** services"
	got, err := HTML(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"<h1", "<ul>", "<li>", "<strong>Go</strong>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestHTMLPassesPlainTextThrough(t *testing.T) {
	got, err := HTML("Skill: Python, Skill: SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Skill: Python") || !strings.Contains(got, "Skill: SQL") {
		t.Fatalf("expected both skills in output:\n%s", got)
	}
}
