// Package schema holds the parameter definitions of every Spoolman tool.
//
// Each operation is described by a Go struct whose tags carry the field
// constraints. The struct is reflected into a JSON Schema with
// invopop/jsonschema; the resulting document is both advertised to MCP
// clients and compiled with santhosh-tekuri/jsonschema for validation, so the
// contract a client sees is the contract that is enforced.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrValidation is matched by every error returned from Validate and Decode.
var ErrValidation = errors.New("invalid parameters")

// ValidationError lists the constraints an input violated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Violations, "; ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Schema is a reflected and compiled parameter schema.
type Schema struct {
	doc      json.RawMessage
	compiled *jsonschema.Schema
}

// Reflect builds the schema of v, which must be a struct value.
func Reflect(v any) (*Schema, error) {
	r := invopop.Reflector{
		Anonymous:                  true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}

	doc, err := json.Marshal(r.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("schema: marshal %T: %w", v, err)
	}

	compiled, err := jsonschema.CompileString("params.json", string(doc))
	if err != nil {
		return nil, fmt.Errorf("schema: compile %T: %w", v, err)
	}

	return &Schema{doc: doc, compiled: compiled}, nil
}

// MustReflect is like Reflect but panics on error. Parameter structs are
// static, so a failure here is a programming error.
func MustReflect(v any) *Schema {
	s, err := Reflect(v)
	if err != nil {
		panic(err)
	}

	return s
}

// JSON returns the JSON Schema document.
func (s *Schema) JSON() json.RawMessage {
	return s.doc
}

// Validate checks raw against the schema. Absent or null input is treated as
// an empty object.
func (s *Schema) Validate(raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(normalize(raw)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &ValidationError{Violations: []string{"malformed JSON: " + err.Error()}}
	}

	err := s.compiled.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return &ValidationError{Violations: violations(ve, nil)}
	}

	return &ValidationError{Violations: []string{err.Error()}}
}

// Decode validates raw against s and unmarshals it into a T.
func Decode[T any](s *Schema, raw json.RawMessage) (T, error) {
	var v T

	raw = normalize(raw)
	if err := s.Validate(raw); err != nil {
		return v, err
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &ValidationError{Violations: []string{err.Error()}}
	}

	return v, nil
}

func normalize(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("{}")
	}

	return raw
}

// violations flattens the leaves of a validation error tree into
// "<field>: <reason>" lines.
func violations(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) > 0 {
		for _, c := range ve.Causes {
			out = violations(c, out)
		}

		return out
	}

	field := strings.TrimPrefix(ve.InstanceLocation, "/")
	msg := ve.Message

	if field == "sort" && (strings.HasSuffix(ve.KeywordLocation, "/pattern") || strings.Contains(msg, "pattern")) {
		msg = sortMessage
	}

	if field == "" {
		return append(out, msg)
	}

	return append(out, field+": "+msg)
}
