package tools

import (
	"fmt"
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/schema"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func spoolPath(id int) string { return fmt.Sprintf("/spool/%d", id) }

func (t *Toolset) spoolTools() []toolbox.Tool {
	return []toolbox.Tool{
		operation(t, "findSpools", "Find spools matching the search criteria. Archived spools are hidden unless allow_archived is set.",
			func(p schema.SpoolSearchParams) (client.Request, error) {
				return search("/spool", p)
			}),
		operation(t, "getSpool", "Get a specific spool.",
			func(p schema.SpoolID) (client.Request, error) {
				return get(spoolPath(p.SpoolID)), nil
			}),
		operation(t, "addSpool", "Add a new spool of an existing filament.",
			func(p schema.AddSpoolParams) (client.Request, error) {
				return client.Request{Method: http.MethodPost, Path: "/spool", Body: p}, nil
			}),
		operation(t, "updateSpool", "Update a spool. Only the given fields are changed.",
			func(p schema.UpdateSpoolParams) (client.Request, error) {
				return client.Request{Method: http.MethodPatch, Path: spoolPath(p.SpoolID.SpoolID), Body: p.SpoolPatch}, nil
			}),
		operation(t, "deleteSpool", "Delete a spool.",
			func(p schema.SpoolID) (client.Request, error) {
				return client.Request{Method: http.MethodDelete, Path: spoolPath(p.SpoolID)}, nil
			}),
		operation(t, "useSpool", "Consume filament from a spool, either by weight (grams) or by length (mm).",
			func(p schema.UseSpoolParams) (client.Request, error) {
				return client.Request{Method: http.MethodPut, Path: spoolPath(p.SpoolID.SpoolID) + "/use", Body: p.SpoolUsage}, nil
			}),
	}
}
