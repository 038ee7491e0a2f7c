package sessions

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name     string
		workflow Workflow
		from     State
		to       State
		want     bool
	}{
		{"idle to collecting", WorkflowResume, StateIdle, StateCollecting, true},
		{"idle cannot skip to analyzing", WorkflowResume, StateIdle, StateAnalyzing, false},
		{"resume collecting to analyzing", WorkflowResume, StateCollecting, StateAnalyzing, true},
		{"cover letter collecting to analyzing", WorkflowCoverLetter, StateCollecting, StateAnalyzing, true},
		{"resume cannot skip analysis", WorkflowResume, StateCollecting, StateGenerating, false},
		{"meal plan skips analysis", WorkflowMealPlan, StateCollecting, StateGenerating, true},
		{"meal plan has no analyzing stage", WorkflowMealPlan, StateCollecting, StateAnalyzing, false},
		{"analyzing to skills ready", WorkflowResume, StateAnalyzing, StateSkillsReady, true},
		{"analyzing may fail", WorkflowResume, StateAnalyzing, StateError, true},
		{"skills ready to generating", WorkflowResume, StateSkillsReady, StateGenerating, true},
		{"generating to done", WorkflowResume, StateGenerating, StateDone, true},
		{"generating may fail", WorkflowMealPlan, StateGenerating, StateError, true},
		{"error back to collecting", WorkflowResume, StateError, StateCollecting, true},
		{"error cannot jump to done", WorkflowResume, StateError, StateDone, false},
		{"done is terminal", WorkflowResume, StateDone, StateGenerating, false},
		{"no backwards move", WorkflowResume, StateSkillsReady, StateCollecting, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanTransition(tc.workflow, tc.from, tc.to)
			if got != tc.want {
				t.Fatalf("CanTransition(%s, %s, %s) = %v, want %v", tc.workflow, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestTransitionRejectsInvalidMove(t *testing.T) {
	s := Session{Workflow: WorkflowResume, State: StateIdle}
	err := s.Transition(StateDone)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.State != StateIdle {
		t.Fatalf("state changed on rejected transition: %s", s.State)
	}
}

func TestFailRecordsMessage(t *testing.T) {
	s := Session{Workflow: WorkflowMealPlan, State: StateGenerating}
	if err := s.Fail("model unavailable"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if s.State != StateError {
		t.Fatalf("state = %s, want error", s.State)
	}
	if s.LastError != "model unavailable" {
		t.Fatalf("LastError = %q", s.LastError)
	}
}

func TestFailOnlyFromInFlightStates(t *testing.T) {
	s := Session{Workflow: WorkflowResume, State: StateCollecting}
	if err := s.Fail("boom"); err == nil {
		t.Fatal("expected Fail to be rejected from collecting")
	}
}

func TestResetClearsArtifactsKeepsInputs(t *testing.T) {
	s := Session{
		Workflow:       WorkflowResume,
		State:          StateDone,
		ResumeText:     "resume body",
		JobDescription: "job body",
		Skills:         []string{"Go", "SQL"},
		SelectedSkills: []string{"Go"},
		Document:       "generated",
		DocumentHTML:   "<p>generated</p>",
		LastError:      "old error",
	}
	s.Reset()
	if s.State != StateCollecting {
		t.Fatalf("state = %s, want collecting", s.State)
	}
	if s.Skills != nil || s.SelectedSkills != nil || s.Document != "" || s.DocumentHTML != "" || s.LastError != "" {
		t.Fatal("derived artifacts survived reset")
	}
	if s.ResumeText != "resume body" || s.JobDescription != "job body" {
		t.Fatal("collected inputs should survive reset")
	}
}

func TestParseWorkflow(t *testing.T) {
	for _, raw := range []string{"resume", "cover_letter", "meal_plan"} {
		if _, err := ParseWorkflow(raw); err != nil {
			t.Fatalf("ParseWorkflow(%q): %v", raw, err)
		}
	}
	if _, err := ParseWorkflow("newsletter"); err == nil {
		t.Fatal("expected error for unknown workflow")
	}
}
