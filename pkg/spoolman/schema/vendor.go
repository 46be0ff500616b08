package schema

// VendorID addresses a single vendor.
type VendorID struct {
	VendorID int `json:"vendor_id" jsonschema:"required" jsonschema_description:"ID of the vendor"`
}

// AddVendorParams is the body of a vendor creation.
type AddVendorParams struct {
	Name             string            `json:"name" jsonschema:"required,maxLength=64"`
	Comment          *string           `json:"comment,omitempty" jsonschema:"maxLength=1024"`
	EmptySpoolWeight *float64          `json:"empty_spool_weight,omitempty" jsonschema:"minimum=0" jsonschema_description:"Weight of an empty spool in grams"`
	ExternalID       *string           `json:"external_id,omitempty" jsonschema:"maxLength=256"`
	Extra            map[string]string `json:"extra,omitempty" jsonschema_description:"Extra fields, values are JSON encoded strings"`
}

// VendorPatch holds the mutable vendor fields.
type VendorPatch struct {
	Name             Nullable[string]            `json:"name,omitzero" jsonschema:"maxLength=64"`
	Comment          Nullable[string]            `json:"comment,omitzero" jsonschema:"nullable,maxLength=1024"`
	EmptySpoolWeight Nullable[float64]           `json:"empty_spool_weight,omitzero" jsonschema:"nullable,minimum=0"`
	ExternalID       Nullable[string]            `json:"external_id,omitzero" jsonschema:"nullable,maxLength=256"`
	Extra            Nullable[map[string]string] `json:"extra,omitzero" jsonschema:"nullable"`
}

// UpdateVendorParams identifies a vendor and the fields to change.
type UpdateVendorParams struct {
	VendorID
	VendorPatch
}
