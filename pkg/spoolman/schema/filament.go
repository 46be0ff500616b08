package schema

// FilamentID addresses a single filament.
type FilamentID struct {
	FilamentID int `json:"filament_id" jsonschema:"required" jsonschema_description:"ID of the filament"`
}

// AddFilamentParams is the body of a filament creation. Density and diameter
// define the filament and are mandatory.
type AddFilamentParams struct {
	Name                 *string           `json:"name,omitempty" jsonschema:"maxLength=64"`
	VendorID             *int              `json:"vendor_id,omitempty"`
	Material             *string           `json:"material,omitempty" jsonschema:"maxLength=64" jsonschema_description:"Material type, e.g. PLA or PETG"`
	Price                *float64          `json:"price,omitempty" jsonschema:"minimum=0"`
	Density              float64           `json:"density" jsonschema:"required,exclusiveMinimum=0" jsonschema_description:"Density in g/cm3"`
	Diameter             float64           `json:"diameter" jsonschema:"required,exclusiveMinimum=0" jsonschema_description:"Diameter in mm"`
	Weight               *float64          `json:"weight,omitempty" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Net filament weight of a full spool in grams"`
	SpoolWeight          *float64          `json:"spool_weight,omitempty" jsonschema:"minimum=0" jsonschema_description:"Weight of the empty spool in grams"`
	ArticleNumber        *string           `json:"article_number,omitempty" jsonschema:"maxLength=64"`
	Comment              *string           `json:"comment,omitempty" jsonschema:"maxLength=1024"`
	SettingsExtruderTemp *int              `json:"settings_extruder_temp,omitempty" jsonschema:"minimum=0"`
	SettingsBedTemp      *int              `json:"settings_bed_temp,omitempty" jsonschema:"minimum=0"`
	ColorHex             *string           `json:"color_hex,omitempty" jsonschema:"pattern=^[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$" jsonschema_description:"Hex color without #"`
	MultiColorHexes      *string           `json:"multi_color_hexes,omitempty" jsonschema_description:"Comma-separated hex colors for multi-color filaments"`
	MultiColorDirection  *string           `json:"multi_color_direction,omitempty" jsonschema:"enum=coaxial,enum=longitudinal"`
	ExternalID           *string           `json:"external_id,omitempty" jsonschema:"maxLength=256"`
	Extra                map[string]string `json:"extra,omitempty"`
}

// FilamentPatch holds the mutable filament fields. Everything but the name
// may be cleared with null.
type FilamentPatch struct {
	Name                 Nullable[string]            `json:"name,omitzero" jsonschema:"maxLength=64"`
	VendorID             Nullable[int]               `json:"vendor_id,omitzero" jsonschema:"nullable"`
	Material             Nullable[string]            `json:"material,omitzero" jsonschema:"nullable,maxLength=64"`
	Price                Nullable[float64]           `json:"price,omitzero" jsonschema:"nullable,minimum=0"`
	Density              Nullable[float64]           `json:"density,omitzero" jsonschema:"nullable,exclusiveMinimum=0"`
	Diameter             Nullable[float64]           `json:"diameter,omitzero" jsonschema:"nullable,exclusiveMinimum=0"`
	Weight               Nullable[float64]           `json:"weight,omitzero" jsonschema:"nullable,exclusiveMinimum=0"`
	SpoolWeight          Nullable[float64]           `json:"spool_weight,omitzero" jsonschema:"nullable,minimum=0"`
	ArticleNumber        Nullable[string]            `json:"article_number,omitzero" jsonschema:"nullable,maxLength=64"`
	Comment              Nullable[string]            `json:"comment,omitzero" jsonschema:"nullable,maxLength=1024"`
	SettingsExtruderTemp Nullable[int]               `json:"settings_extruder_temp,omitzero" jsonschema:"nullable,minimum=0"`
	SettingsBedTemp      Nullable[int]               `json:"settings_bed_temp,omitzero" jsonschema:"nullable,minimum=0"`
	ColorHex             Nullable[string]            `json:"color_hex,omitzero" jsonschema:"nullable,pattern=^[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	MultiColorHexes      Nullable[string]            `json:"multi_color_hexes,omitzero" jsonschema:"nullable"`
	MultiColorDirection  Nullable[string]            `json:"multi_color_direction,omitzero" jsonschema:"nullable,enum=coaxial,enum=longitudinal"`
	ExternalID           Nullable[string]            `json:"external_id,omitzero" jsonschema:"nullable,maxLength=256"`
	Extra                Nullable[map[string]string] `json:"extra,omitzero" jsonschema:"nullable"`
}

// UpdateFilamentParams identifies a filament and the fields to change.
type UpdateFilamentParams struct {
	FilamentID
	FilamentPatch
}
