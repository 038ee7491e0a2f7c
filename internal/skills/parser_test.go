package skills

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseNumberedList(t *testing.T) {
	raw := "Here are the skills:\n1. Python\n2. SQL\n3.  Communication \nnot a skill\n4. Docker"
	got := ParseNumberedList(raw)
	want := []string{"Python", "SQL", "Communication", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseNumberedListFallsBackToEmpty(t *testing.T) {
	got := ParseNumberedList("The model refused to answer in the requested format.")
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestParseNumberedListCapsAtMaxSkills(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "%d. Skill %d\n", i, i)
	}
	got := ParseNumberedList(b.String())
	if len(got) != MaxSkills {
		t.Fatalf("expected %d skills, got %d", MaxSkills, len(got))
	}
}

func TestValidateSelectionBounds(t *testing.T) {
	available := []string{"A", "B", "C", "D", "E", "F", "G"}

	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{name: "two rejected", count: 2, wantErr: ErrTooFewSelected},
		{name: "three accepted", count: 3, wantErr: nil},
		{name: "six accepted", count: 6, wantErr: nil},
		{name: "seven rejected", count: 7, wantErr: ErrTooManySelected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(available[:tt.count], available)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSelectionRejectsUnknownSkill(t *testing.T) {
	err := ValidateSelection([]string{"A", "B", "Z"}, []string{"A", "B", "C"})
	if !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("expected ErrUnknownSkill, got %v", err)
	}
}
