package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rejects strings that are empty once surrounding whitespace is removed
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}

	return strings.TrimSpace(field.String()) != ""
}
