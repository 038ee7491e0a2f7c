package sessions

import (
	"fmt"
	"time"
)

// Workflow identifies which end-to-end pipeline a session runs.
type Workflow string

const (
	WorkflowResume      Workflow = "resume"
	WorkflowCoverLetter Workflow = "cover_letter"
	WorkflowMealPlan    Workflow = "meal_plan"
)

// ParseWorkflow validates a workflow name from a request.
func ParseWorkflow(raw string) (Workflow, error) {
	switch Workflow(raw) {
	case WorkflowResume, WorkflowCoverLetter, WorkflowMealPlan:
		return Workflow(raw), nil
	default:
		return "", fmt.Errorf("unknown workflow: %q", raw)
	}
}

// State names a position in the session state machine.
type State string

const (
	StateIdle        State = "idle"
	StateCollecting  State = "collecting"
	StateAnalyzing   State = "analyzing"
	StateSkillsReady State = "skills_ready"
	StateGenerating  State = "generating"
	StateDone        State = "done"
	StateError       State = "error"
)

// MealProfile is the flat demographic/dietary record collected for the
// meal-plan workflow. Conditional fields stay empty unless the matching
// medical condition was selected.
type MealProfile struct {
	Age                         int
	Gender                      string
	HeightCm                    int
	WeightKg                    int
	ActivityLevel               string
	PrimaryGoal                 string
	DietaryRestrictions         []string
	FoodPreferences             string
	MealFrequency               string
	SnackingHabits              string
	TimeConstraints             []string
	KnownAllergies              string
	MedicalConditions           []string
	DiabetesType                string
	TakingInsulin               string
	TakingMedicationBP          string
	TakingMedicationCholesterol string
	PregnancyTrimester          string
	BreastfeedingDuration       string
	CurrentMedications          string
	MealPrepTime                string
	CookingSkill                string
	KitchenEquipment            []string
	PantryStaples               string
}

// Session is the explicit per-workflow context object. Everything here lives
// in memory for the lifetime of one browser session and is never persisted.
type Session struct {
	ID       string
	Workflow Workflow
	State    State

	// Resume / cover-letter inputs.
	ResumeText     string
	JobDescription string
	CompanyName    string
	RecipientName  string

	// Meal-plan inputs.
	Profile    MealProfile
	ProfileSet bool

	// Derived artifacts.
	Skills         []string
	SelectedSkills []string
	Document       string
	DocumentHTML   string
	LastError      string

	// LastTransition holds the most recent state change as "from->to",
	// for request logging only.
	LastTransition string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransition reports whether the state machine permits from -> to for the
// given workflow. All transitions are driven by explicit user actions; there
// is no automatic retry or timeout path.
func CanTransition(w Workflow, from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateCollecting
	case StateCollecting:
		if to == StateAnalyzing {
			return w == WorkflowResume || w == WorkflowCoverLetter
		}
		// The meal-plan workflow has no skill-extraction stage and goes
		// straight to generation.
		return to == StateGenerating && w == WorkflowMealPlan
	case StateAnalyzing:
		return to == StateSkillsReady || to == StateError
	case StateSkillsReady:
		return to == StateGenerating
	case StateGenerating:
		return to == StateDone || to == StateError
	case StateError:
		return to == StateCollecting
	default:
		return false
	}
}

// Transition moves the session to the target state or fails with
// ErrInvalidTransition.
func (s *Session) Transition(to State) error {
	if !CanTransition(s.Workflow, s.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
	}
	s.LastTransition = string(s.State) + "->" + string(to)
	s.State = to
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Fail records a user-visible error message and moves to the error state.
// Failing is allowed from the two in-flight states only.
func (s *Session) Fail(message string) error {
	if err := s.Transition(StateError); err != nil {
		return err
	}
	s.LastError = message
	return nil
}

// Reset returns the session to collecting and discards all derived
// artifacts. Collected inputs survive so the user can edit and retry.
func (s *Session) Reset() {
	s.LastTransition = string(s.State) + "->" + string(StateCollecting)
	s.State = StateCollecting
	s.Skills = nil
	s.SelectedSkills = nil
	s.Document = ""
	s.DocumentHTML = ""
	s.LastError = ""
	s.UpdatedAt = time.Now().UTC()
}
