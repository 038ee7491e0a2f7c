package mealplans

import (
	"context"
	"fmt"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/prompt"
	"tailor-backend/internal/render"
	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/telemetry"
	"tailor-backend/internal/shared/util"
)

// Service drives the meal-plan workflow over a session. There is no
// analysis stage: a complete profile goes straight to generation.
type Service struct {
	Repo sessions.Repo
	LLM  llm.Client
}

// SetProfile stores the client profile on the session.
func (s *Service) SetProfile(ctx context.Context, sessionID string, profile sessions.MealProfile) (sessions.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if session.State == sessions.StateIdle {
		if err := session.Transition(sessions.StateCollecting); err != nil {
			return sessions.Session{}, err
		}
	}
	if session.State != sessions.StateCollecting {
		return sessions.Session{}, fmt.Errorf("%w: profile is editable in collecting only, session is %s",
			sessions.ErrInvalidTransition, session.State)
	}

	session.Profile = profile
	session.ProfileSet = true
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	return session, nil
}

// Generate produces the one-week plan from the stored profile, renders it to
// HTML and completes the session.
func (s *Service) Generate(ctx context.Context, sessionID string) (sessions.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if !session.ProfileSet {
		return sessions.Session{}, ErrMissingProfile
	}
	if err := session.Transition(sessions.StateGenerating); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}

	p := prompt.MealPlan(promptInput(session.Profile))

	metrics.IncGenerationStarted()
	started := metrics.NowMillis()
	reply, err := s.LLM.Generate(ctx, p)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("mealplan.failed", map[string]any{
			"session_id":  session.ID,
			"prompt_hash": util.HashPrompt(p),
			"error":       err.Error(),
		})
		return s.fail(ctx, session, "Failed to generate the meal plan. Please try again.", err)
	}
	metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)

	html, err := render.HTML(reply)
	if err != nil {
		metrics.IncGenerationFailed()
		return s.fail(ctx, session, "Failed to render the generated meal plan.", err)
	}

	session.Document = reply
	session.DocumentHTML = html
	if err := session.Transition(sessions.StateDone); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	metrics.IncGenerationCompleted()
	telemetry.Info("mealplan.completed", map[string]any{
		"session_id":  session.ID,
		"prompt_hash": util.HashPrompt(p),
	})
	return session, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (sessions.Session, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if session.Workflow != sessions.WorkflowMealPlan {
		return sessions.Session{}, ErrWrongWorkflow
	}
	return session, nil
}

func (s *Service) fail(ctx context.Context, session sessions.Session, message string, cause error) (sessions.Session, error) {
	if err := session.Fail(message); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	return session, fmt.Errorf("%w: %v", ErrGenerationFailed, cause)
}

func promptInput(p sessions.MealProfile) prompt.MealPlanInput {
	return prompt.MealPlanInput{
		Age:                         p.Age,
		Gender:                      p.Gender,
		HeightCm:                    p.HeightCm,
		WeightKg:                    p.WeightKg,
		ActivityLevel:               p.ActivityLevel,
		PrimaryGoal:                 p.PrimaryGoal,
		DietaryRestrictions:         p.DietaryRestrictions,
		FoodPreferences:             p.FoodPreferences,
		MealFrequency:               p.MealFrequency,
		SnackingHabits:              p.SnackingHabits,
		TimeConstraints:             p.TimeConstraints,
		KnownAllergies:              p.KnownAllergies,
		MedicalConditions:           p.MedicalConditions,
		DiabetesType:                p.DiabetesType,
		TakingInsulin:               p.TakingInsulin,
		TakingMedicationBP:          p.TakingMedicationBP,
		TakingMedicationCholesterol: p.TakingMedicationCholesterol,
		PregnancyTrimester:          p.PregnancyTrimester,
		BreastfeedingDuration:       p.BreastfeedingDuration,
		CurrentMedications:          p.CurrentMedications,
		MealPrepTime:                p.MealPrepTime,
		CookingSkill:                p.CookingSkill,
		KitchenEquipment:            p.KitchenEquipment,
		PantryStaples:               p.PantryStaples,
	}
}
