package mealplans

import "errors"

var (
	// ErrWrongWorkflow means the session runs a resume or cover-letter workflow.
	ErrWrongWorkflow = errors.New("session is not a meal plan session")

	// ErrMissingProfile means generation was requested before a profile was set.
	ErrMissingProfile = errors.New("client profile is required")

	// ErrGenerationFailed wraps any model call failure.
	ErrGenerationFailed = errors.New("generation failed")
)
