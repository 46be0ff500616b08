package schema

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
	invopop "github.com/invopop/jsonschema"
)

// SortPattern is the accepted shape of the sort parameter: one or more
// comma-separated field:direction pairs.
const SortPattern = `^([a-zA-Z0-9_.]+:(asc|desc))(,([a-zA-Z0-9_.]+:(asc|desc)))*$`

const sortMessage = `must be a comma-separated list of "field:direction" (asc|desc) pairs`

// Paging is shared by every search schema.
type Paging struct {
	Sort   *string `json:"sort,omitempty" url:"sort,omitempty" jsonschema_description:"Sort order as field:direction pairs, e.g. name:asc,id:desc"`
	Limit  *int    `json:"limit,omitempty" url:"limit,omitempty" jsonschema:"minimum=1" jsonschema_description:"Maximum number of items to return"`
	Offset *int    `json:"offset,omitempty" url:"offset,omitempty" jsonschema:"minimum=0" jsonschema_description:"Number of items to skip"`
}

func sortable(s *invopop.Schema) {
	if s.Properties == nil {
		return
	}
	if p, ok := s.Properties.Get("sort"); ok {
		p.Pattern = SortPattern
	}
}

// VendorSearchParams filters the vendor list.
type VendorSearchParams struct {
	Name       *string `json:"name,omitempty" url:"name,omitempty" jsonschema_description:"Partial, case-insensitive vendor name"`
	ExternalID *string `json:"external_id,omitempty" url:"external_id,omitempty"`
	Paging
}

func (VendorSearchParams) JSONSchemaExtend(s *invopop.Schema) { sortable(s) }

// FilamentSearchParams filters the filament list.
type FilamentSearchParams struct {
	VendorName               *string  `json:"vendor_name,omitempty" url:"vendor.name,omitempty"`
	VendorID                 *string  `json:"vendor_id,omitempty" url:"vendor.id,omitempty" jsonschema_description:"Comma-separated vendor IDs, -1 matches filaments without a vendor"`
	Name                     *string  `json:"name,omitempty" url:"name,omitempty"`
	Material                 *string  `json:"material,omitempty" url:"material,omitempty"`
	ArticleNumber            *string  `json:"article_number,omitempty" url:"article_number,omitempty"`
	ColorHex                 *string  `json:"color_hex,omitempty" url:"color_hex,omitempty"`
	ColorSimilarityThreshold *float64 `json:"color_similarity_threshold,omitempty" url:"color_similarity_threshold,omitempty" jsonschema:"minimum=0,maximum=100"`
	ExternalID               *string  `json:"external_id,omitempty" url:"external_id,omitempty"`
	Paging
}

func (FilamentSearchParams) JSONSchemaExtend(s *invopop.Schema) { sortable(s) }

// SpoolSearchParams filters the spool list. Nested filters keep the dotted
// names the backend uses.
type SpoolSearchParams struct {
	FilamentName       *string `json:"filament.name,omitempty" url:"filament.name,omitempty"`
	FilamentID         *string `json:"filament.id,omitempty" url:"filament.id,omitempty"`
	FilamentMaterial   *string `json:"filament.material,omitempty" url:"filament.material,omitempty"`
	FilamentVendorName *string `json:"filament.vendor.name,omitempty" url:"filament.vendor.name,omitempty"`
	FilamentVendorID   *string `json:"filament.vendor.id,omitempty" url:"filament.vendor.id,omitempty"`
	Location           *string `json:"location,omitempty" url:"location,omitempty"`
	LotNr              *string `json:"lot_nr,omitempty" url:"lot_nr,omitempty"`
	AllowArchived      *bool   `json:"allow_archived,omitempty" url:"allow_archived,omitempty"`
	Paging
}

func (SpoolSearchParams) JSONSchemaExtend(s *invopop.Schema) { sortable(s) }

// Query encodes the present fields of a search struct as query parameters.
func Query(v any) (url.Values, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("schema: encode query: %w", err)
	}

	return values, nil
}
