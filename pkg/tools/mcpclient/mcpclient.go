package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

// ErrToolFailed marks a call the server answered with an error result.
var ErrToolFailed = errors.New("mcpclient: tool error")

// MCPClient talks to a running MCP server using the official MCP Go SDK.
type MCPClient struct {
	session *mcp.ClientSession
}

// NewHTTP connects to a streamable HTTP MCP server at endpoint.
func NewHTTP(ctx context.Context, endpoint, version string) (*MCPClient, error) {
	return newFromTransport(ctx, &mcp.StreamableClientTransport{Endpoint: endpoint}, version)
}

// newFromTransport connects over transport. Tests pass an in-memory
// transport here.
func newFromTransport(ctx context.Context, transport mcp.Transport, version string) (*MCPClient, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "spoolman-mcp-client",
		Version: version,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("mcpclient: connect: %w", err)
	}

	return &MCPClient{session: session}, nil
}

// ListTools returns the server's tools. Each Handler calls back through
// CallTool.
func (c *MCPClient) ListTools(ctx context.Context) ([]toolbox.Tool, error) {
	result, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("mcpclient: list tools: %w", err)
	}

	tools := make([]toolbox.Tool, 0, len(result.Tools))
	for _, sdkTool := range result.Tools {
		schema, err := json.Marshal(sdkTool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("mcpclient: tool %q schema: %w", sdkTool.Name, err)
		}

		name := sdkTool.Name
		tools = append(tools, toolbox.Tool{
			Name:        name,
			Description: sdkTool.Description,
			InputSchema: schema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				return c.CallTool(ctx, name, input)
			},
		})
	}

	return tools, nil
}

// CallTool calls name with a JSON object of arguments. An error result from
// the server is returned as an error wrapping ErrToolFailed.
func (c *MCPClient) CallTool(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	var args map[string]any
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return "", fmt.Errorf("mcpclient: arguments must be a JSON object: %w", err)
		}
	}

	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("mcpclient: call %s: %w", name, err)
	}

	text := extractText(result)
	if result.IsError {
		return "", fmt.Errorf("%w: %s", ErrToolFailed, text)
	}

	return text, nil
}

// Close ends the session.
func (c *MCPClient) Close() error {
	return c.session.Close()
}

// extractText joins all TextContent items from a CallToolResult with newlines.
func extractText(result *mcp.CallToolResult) string {
	var texts []string
	for _, item := range result.Content {
		if tc, ok := item.(*mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}

	return strings.Join(texts, "\n")
}
