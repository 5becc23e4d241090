// Package scoresheet checks the shape of the per-criterion scores a judge submits.
// Criteria and their values are opaque to the service and stored as given.
package scoresheet

import (
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "contestapi://score-sheet.json"

const schemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "score sheet",
  "type": "object"
}`

// Compiled once at startup
var Schema = jsonschema.MustCompileString(schemaURL, schemaSource)

// Validates a decoded score sheet. On schema failures the offending location -> message map is returned.
func Validate(scores map[string]any) (map[string]string, error) {
	// jsonschema expects map[string]interface{} rather than named map types
	err := Schema.Validate(map[string]any(scores))

	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		errs := validationErr.BasicOutput().Errors
		fieldMap := make(map[string]string, len(errs))
		for _, e := range errs {
			key := e.InstanceLocation
			if key == "" {
				key = e.KeywordLocation
			}
			if key == "" {
				continue
			}
			fieldMap[key] = e.Error
		}

		return fieldMap, err
	}

	return nil, err
}
