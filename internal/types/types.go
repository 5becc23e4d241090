package types

import (
	"encoding/json"
	"fmt"
)

// Unix timestamp at millisecond resolution
type UnixMilli int64

// Tracks whether a JSON field was present in a payload at all, separately from it being null.
// Used for partial updates where an omitted field keeps its value and null clears it.
type Optional[T any] struct {
	Value   *T
	Defined bool
}

// UnmarshalJSON is implemented by deferring to the wrapped type (T).
// It will be called only if the value is defined in the JSON payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Defined || o.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// Present and explicitly null
func (o Optional[T]) IsNull() bool {
	return o.Defined && o.Value == nil
}

// Present with a value
func (o Optional[T]) IsSet() bool {
	return o.Defined && o.Value != nil
}

func Map[T any, U any](o Optional[T], f func(*T) (*U, error)) (Optional[U], error) {
	if !o.Defined {
		return Optional[U]{}, nil
	}

	v, err := f(o.Value)
	if err != nil {
		return Optional[U]{}, fmt.Errorf("failed to apply f to value: %w", err)
	}

	return Optional[U]{
		Defined: true,
		Value:   v,
	}, nil
}

func NewFromVal[T any](v T) Optional[T] {
	return Optional[T]{Defined: true, Value: &v}
}

func NewFromPtr[T any](v *T) Optional[T] {
	return Optional[T]{Defined: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Defined: true}
}
