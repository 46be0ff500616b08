package tools

import (
	"fmt"
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/schema"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func filamentPath(id int) string { return fmt.Sprintf("/filament/%d", id) }

func (t *Toolset) filamentTools() []toolbox.Tool {
	return []toolbox.Tool{
		operation(t, "getFilaments", "Get a list of filaments that match the search query.",
			func(p schema.FilamentSearchParams) (client.Request, error) {
				return search("/filament", p)
			}),
		operation(t, "getFilament", "Get a specific filament.",
			func(p schema.FilamentID) (client.Request, error) {
				return get(filamentPath(p.FilamentID)), nil
			}),
		operation(t, "addFilament", "Add a new filament. Density and diameter are required.",
			func(p schema.AddFilamentParams) (client.Request, error) {
				return client.Request{Method: http.MethodPost, Path: "/filament", Body: p}, nil
			}),
		operation(t, "updateFilament", "Update a filament. Only the given fields are changed; null clears a field.",
			func(p schema.UpdateFilamentParams) (client.Request, error) {
				return client.Request{Method: http.MethodPatch, Path: filamentPath(p.FilamentID.FilamentID), Body: p.FilamentPatch}, nil
			}),
		operation(t, "deleteFilament", "Delete a filament.",
			func(p schema.FilamentID) (client.Request, error) {
				return client.Request{Method: http.MethodDelete, Path: filamentPath(p.FilamentID)}, nil
			}),
	}
}
