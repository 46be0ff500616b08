package schema

import (
	"encoding/json"

	invopop "github.com/invopop/jsonschema"
)

// Nullable is an update field that can be absent, explicitly null or set.
// Tag it with `json:",omitzero"` so absent values stay out of request bodies;
// an explicit null is forwarded so the backend clears the field.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

// IsZero reports whether the field was absent from the input.
func (n Nullable[T]) IsZero() bool { return !n.set }

// IsNull reports whether the field was explicitly null.
func (n Nullable[T]) IsNull() bool { return n.set && n.null }

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.set || n.null {
		return []byte("null"), nil
	}

	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.set = true
	if string(data) == "null" {
		var zero T
		n.value, n.null = zero, true

		return nil
	}

	n.null = false

	return json.Unmarshal(data, &n.value)
}

// JSONSchema describes the underlying type. Field tags add bounds on top of
// it and the `nullable` tag admits null.
func (Nullable[T]) JSONSchema() *invopop.Schema {
	var zero T

	switch any(zero).(type) {
	case string:
		return &invopop.Schema{Type: "string"}
	case int, int64:
		return &invopop.Schema{Type: "integer"}
	case float64:
		return &invopop.Schema{Type: "number"}
	case bool:
		return &invopop.Schema{Type: "boolean"}
	case map[string]string:
		return &invopop.Schema{Type: "object", AdditionalProperties: &invopop.Schema{Type: "string"}}
	default:
		return &invopop.Schema{}
	}
}
