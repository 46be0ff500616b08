package tools

import (
	"fmt"
	"net/http"

	"github.com/germanamz/spoolman-mcp/pkg/spoolman/client"
	"github.com/germanamz/spoolman-mcp/pkg/spoolman/schema"
	"github.com/germanamz/spoolman-mcp/pkg/tools/toolbox"
)

func vendorPath(id int) string { return fmt.Sprintf("/vendor/%d", id) }

func (t *Toolset) vendorTools() []toolbox.Tool {
	return []toolbox.Tool{
		operation(t, "getVendors", "Get a list of vendors that match the search query.",
			func(p schema.VendorSearchParams) (client.Request, error) {
				return search("/vendor", p)
			}),
		operation(t, "getVendor", "Get a specific vendor by ID.",
			func(p schema.VendorID) (client.Request, error) {
				return get(vendorPath(p.VendorID)), nil
			}),
		operation(t, "addVendor", "Add a new vendor.",
			func(p schema.AddVendorParams) (client.Request, error) {
				return client.Request{Method: http.MethodPost, Path: "/vendor", Body: p}, nil
			}),
		operation(t, "updateVendor", "Update a vendor. Only the given fields are changed; null clears a field.",
			func(p schema.UpdateVendorParams) (client.Request, error) {
				return client.Request{Method: http.MethodPatch, Path: vendorPath(p.VendorID.VendorID), Body: p.VendorPatch}, nil
			}),
		operation(t, "deleteVendor", "Delete a vendor. Filaments of the vendor are kept without a vendor.",
			func(p schema.VendorID) (client.Request, error) {
				return client.Request{Method: http.MethodDelete, Path: vendorPath(p.VendorID)}, nil
			}),
	}
}
