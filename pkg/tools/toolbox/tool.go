package toolbox

import (
	"context"
	"encoding/json"
)

// Handler runs a tool on its raw JSON arguments. The result is the text
// handed back to the client, usually a JSON document.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool is a named operation with a JSON Schema for its arguments.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Descriptor is the serializable part of a Tool, as listed to clients.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Descriptor returns the tool without its handler.
func (t Tool) Descriptor() Descriptor {
	return Descriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.InputSchema,
	}
}
