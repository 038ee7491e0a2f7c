// Package prompt composes the instruction strings sent to the generative
// model. Composition is a pure string substitution over embedded templates:
// identical inputs always produce byte-identical prompts.
package prompt

import (
	_ "embed"
	"strconv"
	"strings"

	"tailor-backend/internal/shared/util"
	"tailor-backend/internal/skills"
)

var (
	//go:embed templates/extract_skills.txt
	extractSkillsTemplate string
	//go:embed templates/resume.txt
	resumeTemplate string
	//go:embed templates/cover_letter.txt
	coverLetterTemplate string
	//go:embed templates/meal_plan.txt
	mealPlanTemplate string
)

// ExtractSkills builds the skill-extraction prompt for a job description.
func ExtractSkills(jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{MAX_SKILLS}}", strconv.Itoa(skills.MaxSkills),
		"{{JOB_DESCRIPTION}}", util.SanitizeText(jobDescription),
	)
	return replacer.Replace(extractSkillsTemplate)
}

// Resume builds the tailored-resume prompt.
func Resume(resumeText, jobDescription string, selected []string) string {
	replacer := strings.NewReplacer(
		"{{SKILL_COUNT}}", strconv.Itoa(len(selected)),
		"{{SKILLS}}", strings.Join(selected, ", "),
		"{{RESUME}}", util.SanitizeText(resumeText),
		"{{JOB_DESCRIPTION}}", util.SanitizeText(jobDescription),
	)
	return replacer.Replace(resumeTemplate)
}

// CoverLetter builds the tailored-cover-letter prompt.
func CoverLetter(resumeText, jobDescription, companyName, recipientName string, selected []string) string {
	replacer := strings.NewReplacer(
		"{{SKILL_COUNT}}", strconv.Itoa(len(selected)),
		"{{SKILLS}}", strings.Join(selected, ", "),
		"{{RESUME}}", util.SanitizeText(resumeText),
		"{{JOB_DESCRIPTION}}", util.SanitizeText(jobDescription),
		"{{COMPANY_NAME}}", util.SanitizeText(companyName),
		"{{RECIPIENT_NAME}}", util.SanitizeText(recipientName),
	)
	return replacer.Replace(coverLetterTemplate)
}

// MealPlanInput carries the client-information block of the meal-plan prompt.
// Optional condition-specific fields default to "N/A" when empty.
type MealPlanInput struct {
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

// MealPlan builds the one-week meal-plan prompt.
func MealPlan(in MealPlanInput) string {
	replacer := strings.NewReplacer(
		"{{AGE}}", strconv.Itoa(in.Age),
		"{{GENDER}}", util.SanitizeText(in.Gender),
		"{{HEIGHT_CM}}", strconv.Itoa(in.HeightCm),
		"{{WEIGHT_KG}}", strconv.Itoa(in.WeightKg),
		"{{ACTIVITY_LEVEL}}", util.SanitizeText(in.ActivityLevel),
		"{{PRIMARY_GOAL}}", util.SanitizeText(in.PrimaryGoal),
		"{{DIETARY_RESTRICTIONS}}", joinOrNone(in.DietaryRestrictions),
		"{{FOOD_PREFERENCES}}", orNA(in.FoodPreferences),
		"{{MEAL_FREQUENCY}}", util.SanitizeText(in.MealFrequency),
		"{{SNACKING_HABITS}}", util.SanitizeText(in.SnackingHabits),
		"{{TIME_CONSTRAINTS}}", joinOrNone(in.TimeConstraints),
		"{{KNOWN_ALLERGIES}}", orNA(in.KnownAllergies),
		"{{MEDICAL_CONDITIONS}}", joinOrNone(in.MedicalConditions),
		"{{DIABETES_TYPE}}", orNA(in.DiabetesType),
		"{{TAKING_INSULIN}}", orNA(in.TakingInsulin),
		"{{TAKING_MEDICATION_BP}}", orNA(in.TakingMedicationBP),
		"{{TAKING_MEDICATION_CHOLESTEROL}}", orNA(in.TakingMedicationCholesterol),
		"{{PREGNANCY_TRIMESTER}}", orNA(in.PregnancyTrimester),
		"{{BREASTFEEDING_DURATION}}", orNA(in.BreastfeedingDuration),
		"{{CURRENT_MEDICATIONS}}", orNA(in.CurrentMedications),
		"{{MEAL_PREP_TIME}}", util.SanitizeText(in.MealPrepTime),
		"{{COOKING_SKILL}}", util.SanitizeText(in.CookingSkill),
		"{{KITCHEN_EQUIPMENT}}", joinOrNone(in.KitchenEquipment),
		"{{PANTRY_STAPLES}}", util.SanitizeText(in.PantryStaples),
	)
	return replacer.Replace(mealPlanTemplate)
}

func joinOrNone(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := util.SanitizeText(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return "None"
	}
	return strings.Join(cleaned, ", ")
}

func orNA(s string) string {
	if trimmed := util.SanitizeText(s); trimmed != "" {
		return trimmed
	}
	return "N/A"
}
