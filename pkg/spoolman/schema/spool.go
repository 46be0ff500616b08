package schema

import invopop "github.com/invopop/jsonschema"

// SpoolID addresses a single spool.
type SpoolID struct {
	SpoolID int `json:"spool_id" jsonschema:"required" jsonschema_description:"ID of the spool"`
}

// AddSpoolParams is the body of a spool creation. The backend defaults
// used_weight to zero when it is absent.
type AddSpoolParams struct {
	FilamentID      int               `json:"filament_id" jsonschema:"required"`
	Price           *float64          `json:"price,omitempty" jsonschema:"minimum=0"`
	InitialWeight   *float64          `json:"initial_weight,omitempty" jsonschema:"minimum=0" jsonschema_description:"Net weight of a full spool in grams"`
	SpoolWeight     *float64          `json:"spool_weight,omitempty" jsonschema:"minimum=0"`
	RemainingWeight *float64          `json:"remaining_weight,omitempty" jsonschema:"minimum=0"`
	UsedWeight      *float64          `json:"used_weight,omitempty" jsonschema:"minimum=0"`
	Location        *string           `json:"location,omitempty" jsonschema:"maxLength=256"`
	LotNr           *string           `json:"lot_nr,omitempty" jsonschema:"maxLength=64"`
	Comment         *string           `json:"comment,omitempty" jsonschema:"maxLength=1024"`
	Archived        *bool             `json:"archived,omitempty"`
	FirstUsed       *string           `json:"first_used,omitempty" jsonschema:"format=date-time"`
	LastUsed        *string           `json:"last_used,omitempty" jsonschema:"format=date-time"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// SpoolPatch holds the mutable spool fields.
type SpoolPatch struct {
	FilamentID      *int              `json:"filament_id,omitempty"`
	Price           *float64          `json:"price,omitempty" jsonschema:"minimum=0"`
	InitialWeight   *float64          `json:"initial_weight,omitempty" jsonschema:"minimum=0"`
	SpoolWeight     *float64          `json:"spool_weight,omitempty" jsonschema:"minimum=0"`
	RemainingWeight *float64          `json:"remaining_weight,omitempty" jsonschema:"minimum=0"`
	UsedWeight      *float64          `json:"used_weight,omitempty" jsonschema:"minimum=0"`
	Location        *string           `json:"location,omitempty" jsonschema:"maxLength=256"`
	LotNr           *string           `json:"lot_nr,omitempty" jsonschema:"maxLength=64"`
	Comment         *string           `json:"comment,omitempty" jsonschema:"maxLength=1024"`
	Archived        *bool             `json:"archived,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// UpdateSpoolParams identifies a spool and the fields to change.
type UpdateSpoolParams struct {
	SpoolID
	SpoolPatch
}

// SpoolUsage consumes filament from a spool, by weight or by length.
type SpoolUsage struct {
	UseWeight *float64 `json:"use_weight,omitempty" jsonschema_description:"Filament weight to consume in grams"`
	UseLength *float64 `json:"use_length,omitempty" jsonschema_description:"Filament length to consume in mm"`
}

// UseSpoolParams identifies a spool and the amount to consume. Exactly one of
// use_weight and use_length must be given.
type UseSpoolParams struct {
	SpoolID
	SpoolUsage
}

func (UseSpoolParams) JSONSchemaExtend(s *invopop.Schema) {
	s.OneOf = []*invopop.Schema{
		{Required: []string{"use_weight"}},
		{Required: []string{"use_length"}},
	}
}

// NoParams is the schema of operations without parameters.
type NoParams struct{}
