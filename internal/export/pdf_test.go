package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPDFStartsWithSignature(t *testing.T) {
	data, err := PDF("Skill: Python, Skill: SQL", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty byte stream")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF signature, got %q", data[:8])
	}
}

func TestPDFContainsText(t *testing.T) {
	// Compression is off, so the content stream carries the literal text.
	data, err := PDF("Skill: Python, Skill: SQL", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("Skill: Python, Skill: SQL")) {
		t.Fatal("expected exported text in the content stream")
	}
}

func TestPDFRejectsEmptyText(t *testing.T) {
	if _, err := PDF("   \n  ", DefaultOptions()); !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed, got %v", err)
	}
}

func TestPDFSubstitutesUnencodableRunes(t *testing.T) {
	data, err := PDF("Résumé — 日本語", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("expected PDF signature")
	}
}

func TestPDFPaginatesLongText(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteString("A line of meal plan text that needs to be wrapped and paginated.\n")
	}
	data, err := PDF(b.String(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "/Type /Pages" matches once; each page adds a "/Type /Page" object.
	if bytes.Count(data, []byte("/Type /Page")) < 3 {
		t.Fatal("expected multiple pages")
	}
}

func TestNormalizeFallsBackOnUnknownOptions(t *testing.T) {
	got := normalize(Options{PageSize: "A0", Font: "Comic Sans"})
	if got.PageSize != "A4" {
		t.Fatalf("expected A4 fallback, got %s", got.PageSize)
	}
	if got.Font != "Arial" {
		t.Fatalf("expected Arial fallback, got %s", got.Font)
	}
	letter := normalize(Options{PageSize: "letter", Font: "times"})
	if letter.PageSize != "Letter" || letter.Font != "Times" {
		t.Fatalf("expected recognized options to pass through, got %+v", letter)
	}
}
