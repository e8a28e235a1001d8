package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// Fold returns s under Unicode case folding. Search compares folded text on
// both sides.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// MatchesQuery reports whether the title, content or equipment name
// contains query, ignoring case.
func (r Record) MatchesQuery(query string) bool {
	return ContainsFold(r.Title, query) ||
		ContainsFold(r.Content, query) ||
		ContainsFold(r.EquipmentName, query)
}

// ValidateDraft checks the fields a save needs. Title must not be blank;
// image paths must not contain the list separator.
func ValidateDraft(title string, images []string) error {
	var errs []FieldError
	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	for _, p := range images {
		if HasSeparator(p) {
			errs = append(errs, FieldError{Field: "image_paths", Message: "path must not contain " + imagePathSeparator})
			break
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
