package mealplans

import "tailor-backend/internal/sessions"

// profileRequest is the body of PUT /sessions/:id/profile. It mirrors the
// intake questionnaire; condition-specific fields are only meaningful when
// the matching medical condition is listed.
type profileRequest struct {
	Age                         int      `json:"age"`
	Gender                      string   `json:"gender"`
	HeightCm                    int      `json:"heightCm"`
	WeightKg                    int      `json:"weightKg"`
	ActivityLevel               string   `json:"activityLevel"`
	PrimaryGoal                 string   `json:"primaryGoal"`
	DietaryRestrictions         []string `json:"dietaryRestrictions"`
	FoodPreferences             string   `json:"foodPreferences"`
	MealFrequency               string   `json:"mealFrequency"`
	SnackingHabits              string   `json:"snackingHabits"`
	TimeConstraints             []string `json:"timeConstraints"`
	KnownAllergies              string   `json:"knownAllergies"`
	MedicalConditions           []string `json:"medicalConditions"`
	DiabetesType                string   `json:"diabetesType"`
	TakingInsulin               string   `json:"takingInsulin"`
	TakingMedicationBP          string   `json:"takingMedicationBp"`
	TakingMedicationCholesterol string   `json:"takingMedicationCholesterol"`
	PregnancyTrimester          string   `json:"pregnancyTrimester"`
	BreastfeedingDuration       string   `json:"breastfeedingDuration"`
	CurrentMedications          string   `json:"currentMedications"`
	MealPrepTime                string   `json:"mealPrepTime"`
	CookingSkill                string   `json:"cookingSkill"`
	KitchenEquipment            []string `json:"kitchenEquipment"`
	PantryStaples               string   `json:"pantryStaples"`
}

// validate returns one entry per invalid field, empty when the profile is
// acceptable. Bounds follow the intake form limits.
func (r profileRequest) validate() []map[string]string {
	var issues []map[string]string
	add := func(field, issue string) {
		issues = append(issues, map[string]string{"field": field, "issue": issue})
	}

	if r.Age < 1 || r.Age > 120 {
		add("age", "must be between 1 and 120")
	}
	if r.Gender == "" {
		add("gender", "required")
	}
	if r.HeightCm < 50 || r.HeightCm > 250 {
		add("heightCm", "must be between 50 and 250")
	}
	if r.WeightKg < 30 || r.WeightKg > 200 {
		add("weightKg", "must be between 30 and 200")
	}
	if r.ActivityLevel == "" {
		add("activityLevel", "required")
	}
	if r.PrimaryGoal == "" {
		add("primaryGoal", "required")
	}
	if r.MealFrequency == "" {
		add("mealFrequency", "required")
	}
	return issues
}

func (r profileRequest) toProfile() sessions.MealProfile {
	return sessions.MealProfile{
		Age:                         r.Age,
		Gender:                      r.Gender,
		HeightCm:                    r.HeightCm,
		WeightKg:                    r.WeightKg,
		ActivityLevel:               r.ActivityLevel,
		PrimaryGoal:                 r.PrimaryGoal,
		DietaryRestrictions:         r.DietaryRestrictions,
		FoodPreferences:             r.FoodPreferences,
		MealFrequency:               r.MealFrequency,
		SnackingHabits:              r.SnackingHabits,
		TimeConstraints:             r.TimeConstraints,
		KnownAllergies:              r.KnownAllergies,
		MedicalConditions:           r.MedicalConditions,
		DiabetesType:                r.DiabetesType,
		TakingInsulin:               r.TakingInsulin,
		TakingMedicationBP:          r.TakingMedicationBP,
		TakingMedicationCholesterol: r.TakingMedicationCholesterol,
		PregnancyTrimester:          r.PregnancyTrimester,
		BreastfeedingDuration:       r.BreastfeedingDuration,
		CurrentMedications:          r.CurrentMedications,
		MealPrepTime:                r.MealPrepTime,
		CookingSkill:                r.CookingSkill,
		KitchenEquipment:            r.KitchenEquipment,
		PantryStaples:               r.PantryStaples,
	}
}
