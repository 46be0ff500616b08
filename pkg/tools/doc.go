// Package tools provides the tool model and its MCP (Model Context Protocol) transports.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/spoolman-mcp/pkg/tools/toolbox] — Tool type and ToolBox for registering, filtering, and calling tools
//   - [github.com/germanamz/spoolman-mcp/pkg/tools/mcpserver] — MCP server exposing a tool set over stdio or streamable HTTP
//   - [github.com/germanamz/spoolman-mcp/pkg/tools/mcpclient] — MCP client for calling the tools of a running HTTP server
//
// The toolbox sub-package is the foundation layer. Both mcpclient and mcpserver
// depend on toolbox for the Tool type but are independent of each other.
// The mcpclient and mcpserver packages are thin wrappers around the official
// MCP Go SDK (github.com/modelcontextprotocol/go-sdk).
package tools
