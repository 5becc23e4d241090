package srverr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		err := &ValidationError{Fields: []string{"nama_ikan", "berat"}}
		assert.Equal(t, "missing required fields: nama_ikan, berat", err.Error())
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		err := &ValidationError{}
		assert.Equal(t, "validation error", err.Error())
	})

	t.Run("FieldMap", func(t *testing.T) {
		err := &ValidationError{Fields: []string{"nama_ikan"}}
		assert.Equal(t, map[string]string{"nama_ikan": "required"}, err.FieldMap())
	})

	t.Run("WrappedAs", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to register: %w", &ValidationError{Fields: []string{"a"}})

		var verr *ValidationError
		require.ErrorAs(t, wrapped, &verr)
		assert.Equal(t, []string{"a"}, verr.Fields)
		assert.False(t, errors.Is(wrapped, ErrNotFound))
	})
}
