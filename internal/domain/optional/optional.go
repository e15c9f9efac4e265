// Package optional provides a presence-aware value for partial updates.
//
// A Value is either absent ("leave the field alone") or present with a value,
// which may itself be the zero value (an empty string, a 0 coordinate).
// When decoded from JSON, a missing key and an explicit null are both absent.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds an optional T together with its presence.
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an absent Value for nil and a present one otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}

	return Of(*p)
}

// IsSet reports whether a value is present.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// OrElse returns the value when present, fallback otherwise.
func (v Value[T]) OrElse(fallback T) T {
	if v.set {
		return v.value
	}

	return fallback
}

// Apply stores the value into dst when present and reports whether it did.
func (v Value[T]) Apply(dst *T) bool {
	if !v.set {
		return false
	}
	*dst = v.value

	return true
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (v Value[T]) Ptr() *T {
	if !v.set {
		return nil
	}
	out := v.value

	return &out
}

// Interface returns the value as any, or nil when absent. The validator uses it to
// run field rules against present values only.
func (v Value[T]) Interface() any {
	if !v.set {
		return nil
	}

	return v.value
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the value absent.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = None[T]()

		return nil
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v = Of(decoded)

	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}

	return json.Marshal(v.value)
}

// AnySet reports whether at least one of the given presence flags is set.
func AnySet(values ...interface{ IsSet() bool }) bool {
	for _, value := range values {
		if value.IsSet() {
			return true
		}
	}

	return false
}
