// prompttest prints the exact prompt a workflow would send to the model,
// without calling any provider. Useful for diffing prompt changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/prompt"
)

func main() {
	kind := flag.String("kind", "extract", "prompt kind: extract, resume, cover-letter or meal-plan")
	resumePath := flag.String("resume", "", "path to resume file (pdf, docx or txt)")
	jdPath := flag.String("jd", "", "path to job description text file")
	company := flag.String("company", "", "company name (cover letters)")
	recipient := flag.String("recipient", "", "recipient name (cover letters)")
	skillsCSV := flag.String("skills", "", "comma-separated selected skills")
	flag.Parse()

	switch *kind {
	case "extract":
		fmt.Print(prompt.ExtractSkills(readText(*jdPath, "jd")))
	case "resume":
		fmt.Print(prompt.Resume(readResume(*resumePath), readText(*jdPath, "jd"), splitSkills(*skillsCSV)))
	case "cover-letter":
		fmt.Print(prompt.CoverLetter(readResume(*resumePath), readText(*jdPath, "jd"), *company, *recipient, splitSkills(*skillsCSV)))
	case "meal-plan":
		fmt.Print(prompt.MealPlan(sampleProfile()))
	default:
		exitErr("unknown kind: " + *kind)
	}
}

func readText(path, name string) string {
	if strings.TrimSpace(path) == "" {
		exitErr(name + " path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr(fmt.Sprintf("read %s: %v", name, err))
	}
	return string(data)
}

func readResume(path string) string {
	if strings.TrimSpace(path) == "" {
		exitErr("resume path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	mimeType, err := mimeFromExt(path)
	if err != nil {
		exitErr(err.Error())
	}
	text, err := extract.TextFromBytes(context.Background(), data, mimeType, filepath.Base(path))
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}
	return text
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case ".txt":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported resume extension: %s", filepath.Ext(path))
	}
}

func splitSkills(csv string) []string {
	var out []string
	for _, s := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sampleProfile() prompt.MealPlanInput {
	return prompt.MealPlanInput{
		Age:                 34,
		Gender:              "Female",
		HeightCm:            168,
		WeightKg:            64,
		ActivityLevel:       "Moderately active",
		PrimaryGoal:         "Weight maintenance",
		DietaryRestrictions: []string{"Vegetarian"},
		FoodPreferences:     "Mediterranean flavours",
		MealFrequency:       "3 meals + 2 snacks",
		SnackingHabits:      "Occasional evening snacks",
		TimeConstraints:     []string{"Busy weekday mornings"},
		KnownAllergies:      "None",
		MedicalConditions:   []string{"None"},
		MealPrepTime:        "30-45 minutes",
		CookingSkill:        "Intermediate",
		KitchenEquipment:    []string{"Oven", "Blender"},
		PantryStaples:       "Rice, lentils, olive oil",
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
