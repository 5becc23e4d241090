// Package formschema checks participant answers against a competition's registration form.
package formschema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquaria-id/contest-api/internal/types"
)

var (
	ErrUnsupportedValue = errors.New("answers must be strings, numbers or null")
	ErrInvalidField     = errors.New("invalid form field")
)

// Names of required fields whose answer is absent, null or blank, in form order
func Missing(fields []types.FormField, answers map[string]any) []string {
	missing := []string{}
	for _, field := range fields {
		if !field.Required {
			continue
		}

		if blank(answers[field.Name]) {
			missing = append(missing, field.Name)
		}
	}

	return missing
}

func blank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// Rejects answer values that are not a JSON string, number or null
func CheckValues(answers map[string]any) error {
	for key, value := range answers {
		switch value.(type) {
		case nil, string, float64, float32, int, int32, int64:
		default:
			return fmt.Errorf("%w: %q", ErrUnsupportedValue, key)
		}
	}

	return nil
}

// Fills in the default field type
func Normalize(fields []types.FormField) []types.FormField {
	normalized := make([]types.FormField, 0, len(fields))
	for _, field := range fields {
		if field.Type == "" {
			field.Type = types.FormFieldTypeText
		}
		field.Name = strings.TrimSpace(field.Name)
		normalized = append(normalized, field)
	}

	return normalized
}

// Field names must be present and unique, types text or number (empty means text)
func CheckFields(fields []types.FormField) error {
	seen := make(map[string]struct{}, len(fields))
	for i, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidField, i)
		}

		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidField, name)
		}
		seen[name] = struct{}{}

		switch field.Type {
		case "", types.FormFieldTypeText, types.FormFieldTypeNumber:
		default:
			return fmt.Errorf("%w: %q has unknown type %q", ErrInvalidField, name, field.Type)
		}
	}

	return nil
}
