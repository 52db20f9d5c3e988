package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"locator/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "iconName" -> "icon name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"query":    "query",
		"iconName": "icon name",
		"exec":     "exec command",
		"path":     "file path",
		"resource": "resource",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateResource checks that r carries the payload its Kind names and
// that the payload is launchable: a non-empty command for applications and
// an absolute path for files.
func ValidateResource(r domain.Resource) error {
	switch r.Kind {
	case domain.KindApplication:
		if r.App == nil {
			return &ValidationError{Field: "resource", Message: "application resource has no application"}
		}
		return ValidateRequired("exec", r.App.Exec)
	case domain.KindFile:
		if r.File == nil {
			return &ValidationError{Field: "resource", Message: "file resource has no file"}
		}
		if err := ValidateRequired("path", r.File.Path); err != nil {
			return err
		}
		if !filepath.IsAbs(r.File.Path) {
			return &ValidationError{
				Field:   "path",
				Message: fmt.Sprintf("expected absolute path, got: %s", r.File.Path),
			}
		}
		return nil
	default:
		return &ValidationError{
			Field:   "resource",
			Message: fmt.Sprintf("unknown resource kind: %s", r.Kind),
		}
	}
}
