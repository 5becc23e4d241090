package scoresheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]any
	}{
		{name: "Numbers", scores: map[string]any{"warna": float64(8.5), "sirip": float64(9)}},
		{name: "Mixed", scores: map[string]any{"warna": float64(8), "catatan": "bagus"}},
		{name: "Empty", scores: map[string]any{}},
		{name: "Absent", scores: nil},
		{name: "Nested", scores: map[string]any{"warna": map[string]any{"nilai": float64(8), "catatan": "cerah"}}},
		{name: "Bool", scores: map[string]any{"lolos": true}},
		{name: "List", scores: map[string]any{"juri": []any{float64(7), float64(9)}}},
		{name: "Null", scores: map[string]any{"warna": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Validate(tt.scores)
			require.NoError(t, err)
			assert.Nil(t, fields)
		})
	}
}

func TestSchemaRejectsNonObject(t *testing.T) {
	for name, doc := range map[string]any{
		"String": "delapan",
		"Number": float64(8),
		"Array":  []any{float64(8)},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Schema.Validate(doc))
		})
	}
}
