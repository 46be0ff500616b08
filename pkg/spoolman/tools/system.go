package tools

import (
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/schema"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func (t *Toolset) systemTools() []toolbox.Tool {
	return []toolbox.Tool{
		operation(t, "getHealth", "Get the health of the Spoolman instance.",
			func(schema.NoParams) (client.Request, error) {
				return get("/health"), nil
			}),
		operation(t, "triggerBackup", "Trigger a backup of the Spoolman database.",
			func(schema.NoParams) (client.Request, error) {
				return client.Request{Method: http.MethodPost, Path: "/backup"}, nil
			}),
		operation(t, "getMaterials", "List the distinct filament materials in use.",
			func(schema.NoParams) (client.Request, error) {
				return get("/material"), nil
			}),
		operation(t, "getLocations", "List the distinct spool locations in use.",
			func(schema.NoParams) (client.Request, error) {
				return get("/location"), nil
			}),
	}
}
