package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/spoolman-mcp/pkg/tools/mcpserver"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	base := []string{
		"--env", filepath.Join(dir, "missing.env"),
		"--log-file", filepath.Join(dir, "spoolman-mcp.log"),
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, base...))

	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spoolman-mcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "spoolman-mcp version dev\n", out)
}

func TestToolsNames(t *testing.T) {
	out, err := execute(t, "tools", "--names", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Len(t, names, 20)
	assert.Contains(t, names, "getHealth")
	assert.Contains(t, names, "useSpool")
}

func TestToolsCatalogue(t *testing.T) {
	cfg := writeConfig(t, "tools:\n  - getSpool\n  - findSpools\n")

	out, err := execute(t, "tools", "--config", cfg)
	require.NoError(t, err)

	var entries []toolbox.Descriptor
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "findSpools", entries[0].Name)
	assert.Equal(t, "getSpool", entries[1].Name)
	assert.Contains(t, string(entries[1].InputSchema), "spool_id")
}

func TestUnknownToolInConfig(t *testing.T) {
	cfg := writeConfig(t, "tools:\n  - getSpools\n")

	_, err := execute(t, "tools", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "getSpools"`)
}

func TestInvalidSpoolmanURL(t *testing.T) {
	t.Setenv("SPOOLMAN_URL", "ftp://spoolman.local")

	_, err := execute(t, "tools", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	cfg := writeConfig(t, "log_level: info\n")

	_, err := execute(t, "tools", "--config", cfg, "--log-level", "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log_level "verbose"`)
}

func TestCallCommand(t *testing.T) {
	srv := mcpserver.New("spoolman-mcp", "test")
	srv.Register(toolbox.Tool{
		Name:        "getHealth",
		Description: "Check backend health",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler: func(context.Context, json.RawMessage) (string, error) {
			return `{"status":"healthy"}`, nil
		},
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	out, err := execute(t, "call", "--server", ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "getHealth\n", out)

	out, err = execute(t, "call", "--server", ts.URL, "getHealth", "{}")
	require.NoError(t, err)
	assert.Equal(t, "{\"status\":\"healthy\"}\n", out)
}
