package resumes

import "errors"

var (
	// ErrWrongWorkflow means the session belongs to the meal-plan workflow.
	ErrWrongWorkflow = errors.New("session is not a resume or cover letter session")

	// Input validation sentinels. Each one names the field the user left out.
	ErrMissingResume         = errors.New("resume text is required")
	ErrMissingJobDescription = errors.New("job description is required")
	ErrMissingCompany        = errors.New("company name is required")
	ErrMissingRecipient      = errors.New("recipient name is required")

	// ErrNoSkillsFound means the model reply contained no parseable skill list.
	ErrNoSkillsFound = errors.New("no skills found in model response")

	// ErrGenerationFailed wraps any model call failure.
	ErrGenerationFailed = errors.New("generation failed")
)
