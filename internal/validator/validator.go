package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Echo compatible validator with proper tag semantics
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Validates a single value against a tag, ex. "required,gte=1"
func (cv *CustomValidator) Var(field any, tag string) error {
	return cv.validator.Var(field, tag)
}

func Create() CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		paramName := strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
		if paramName != "" {
			return paramName
		}

		jsonName := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if jsonName == "-" {
			return ""
		}
		if jsonName == "-," {
			return "-"
		}
		return jsonName
	})

	err := validate.RegisterValidation("notblank", notBlank)
	if err != nil {
		panic("Internal error contact a contributor [notblank-register]")
	}

	return CustomValidator{validator: validate}
}
