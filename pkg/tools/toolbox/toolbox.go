package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Call when no tool is registered under the
// requested name.
var ErrNotFound = errors.New("tool not found")

// ToolBox orchestrates a collection of tools. It allows registering, retrieving,
// listing, and calling tools. The MCP server and the CLI both read from it.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Tools returns all registered tools sorted by name.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result
}

// Filter returns a ToolBox that only holds the named tools. Unknown names are
// skipped. An empty list returns tb itself.
func (tb *ToolBox) Filter(names []string) *ToolBox {
	if len(names) == 0 {
		return tb
	}

	filtered := New()
	for _, name := range names {
		if t, ok := tb.tools[name]; ok {
			filtered.tools[name] = t
		}
	}

	return filtered
}

// Call executes the named tool with the given JSON input.
func (tb *ToolBox) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	t, ok := tb.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return t.Handler(ctx, input)
}
