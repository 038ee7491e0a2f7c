package skills

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewSelected  = fmt.Errorf("select at least %d skills", MinSelected)
	ErrTooManySelected = fmt.Errorf("select at most %d skills", MaxSelected)
	ErrUnknownSkill    = errors.New("selected skill was not extracted")
)

// ValidateSelection checks that between MinSelected and MaxSelected skills
// were chosen and that each one appears in the extracted list.
func ValidateSelection(selected, available []string) error {
	if len(selected) < MinSelected {
		return ErrTooFewSelected
	}
	if len(selected) > MaxSelected {
		return ErrTooManySelected
	}
	known := make(map[string]struct{}, len(available))
	for _, s := range available {
		known[s] = struct{}{}
	}
	for _, s := range selected {
		if _, ok := known[s]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSkill, s)
		}
	}
	return nil
}
