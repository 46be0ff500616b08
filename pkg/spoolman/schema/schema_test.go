package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectProducesObjectSchema(t *testing.T) {
	for _, v := range []any{
		NoParams{},
		VendorID{}, AddVendorParams{}, UpdateVendorParams{}, VendorSearchParams{},
		FilamentID{}, AddFilamentParams{}, UpdateFilamentParams{}, FilamentSearchParams{},
		SpoolID{}, AddSpoolParams{}, UpdateSpoolParams{}, SpoolSearchParams{}, UseSpoolParams{},
	} {
		s, err := Reflect(v)
		require.NoError(t, err, "%T", v)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(s.JSON(), &doc))
		assert.Equal(t, "object", doc["type"], "%T", v)
	}
}

func TestRequiredFields(t *testing.T) {
	var doc struct {
		Required []string `json:"required"`
	}

	require.NoError(t, json.Unmarshal(MustReflect(AddFilamentParams{}).JSON(), &doc))
	assert.ElementsMatch(t, []string{"density", "diameter"}, doc.Required)

	require.NoError(t, json.Unmarshal(MustReflect(UpdateFilamentParams{}).JSON(), &doc))
	assert.Equal(t, []string{"filament_id"}, doc.Required)

	require.NoError(t, json.Unmarshal(MustReflect(AddSpoolParams{}).JSON(), &doc))
	assert.Equal(t, []string{"filament_id"}, doc.Required)

	require.NoError(t, json.Unmarshal(MustReflect(AddVendorParams{}).JSON(), &doc))
	assert.Equal(t, []string{"name"}, doc.Required)
}

func TestDecodeMissingMandatoryField(t *testing.T) {
	s := MustReflect(AddFilamentParams{})

	_, err := Decode[AddFilamentParams](s, json.RawMessage(`{"diameter":1.75}`))
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "density")
}

func TestDecodeBounds(t *testing.T) {
	s := MustReflect(AddFilamentParams{})

	tests := []struct {
		name  string
		input string
		field string
	}{
		{"negative price", `{"density":1.24,"diameter":1.75,"price":-1}`, "price"},
		{"zero density", `{"density":0,"diameter":1.75}`, "density"},
		{"zero weight", `{"density":1.24,"diameter":1.75,"weight":0}`, "weight"},
		{"long name", `{"density":1.24,"diameter":1.75,"name":"` + strings.Repeat("x", 65) + `"}`, "name"},
		{"bad color", `{"density":1.24,"diameter":1.75,"color_hex":"#FF0000"}`, "color_hex"},
		{"bad direction", `{"density":1.24,"diameter":1.75,"multi_color_direction":"radial"}`, "multi_color_direction"},
		{"wrong type", `{"density":"dense","diameter":1.75}`, "density"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[AddFilamentParams](s, json.RawMessage(tt.input))
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDecodeValidCreate(t *testing.T) {
	s := MustReflect(AddFilamentParams{})

	p, err := Decode[AddFilamentParams](s, json.RawMessage(`{"density":1.24,"diameter":1.75,"price":0,"material":"PLA"}`))
	require.NoError(t, err)
	assert.InDelta(t, 1.24, p.Density, 1e-9)
	require.NotNil(t, p.Price)
	assert.Zero(t, *p.Price)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"density":1.24,"diameter":1.75,"price":0,"material":"PLA"}`, string(body))
}

func TestDecodeEmptyInput(t *testing.T) {
	s := MustReflect(NoParams{})

	for _, raw := range []json.RawMessage{nil, json.RawMessage(""), json.RawMessage("null"), json.RawMessage("{}")} {
		_, err := Decode[NoParams](s, raw)
		assert.NoError(t, err, "%q", raw)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode[SpoolID](MustReflect(SpoolID{}), json.RawMessage(`{"spool_id":`))
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestSortPattern(t *testing.T) {
	s := MustReflect(FilamentSearchParams{})

	accepted := []string{
		"name:asc",
		"name:desc",
		"vendor.name:asc,id:desc",
		"filament.vendor.name:asc,price:desc,id:asc",
		"registered_at:desc",
	}
	for _, sort := range accepted {
		input, _ := json.Marshal(map[string]string{"sort": sort})
		_, err := Decode[FilamentSearchParams](s, input)
		assert.NoError(t, err, sort)
	}

	rejected := []string{
		"",
		"name",
		"name:",
		"name:up",
		"name:ASC",
		"name:asc,",
		",name:asc",
		" name:asc",
		"name:asc ",
		"name: asc",
		"name:asc, id:desc",
		"na-me:asc",
	}
	for _, sort := range rejected {
		input, _ := json.Marshal(map[string]string{"sort": sort})
		_, err := Decode[FilamentSearchParams](s, input)
		require.ErrorIs(t, err, ErrValidation, sort)
		assert.Contains(t, err.Error(), "sort: "+sortMessage, sort)
	}
}

func TestSortPatternOnEverySearchSchema(t *testing.T) {
	for _, v := range []any{VendorSearchParams{}, FilamentSearchParams{}, SpoolSearchParams{}} {
		var doc struct {
			Properties map[string]struct {
				Pattern string `json:"pattern"`
			} `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(MustReflect(v).JSON(), &doc))
		assert.Equal(t, SortPattern, doc.Properties["sort"].Pattern, "%T", v)
	}
}

func TestColorSimilarityThreshold(t *testing.T) {
	s := MustReflect(FilamentSearchParams{})

	_, err := Decode[FilamentSearchParams](s, json.RawMessage(`{"color_similarity_threshold":100}`))
	assert.NoError(t, err)

	_, err = Decode[FilamentSearchParams](s, json.RawMessage(`{"color_similarity_threshold":101}`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Decode[FilamentSearchParams](s, json.RawMessage(`{"color_similarity_threshold":-1}`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRequiresIdentifier(t *testing.T) {
	_, err := Decode[UpdateFilamentParams](MustReflect(UpdateFilamentParams{}), json.RawMessage(`{"price":19.99}`))
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "filament_id")
}

func TestUpdatePatchExcludesIdentifier(t *testing.T) {
	p, err := Decode[UpdateFilamentParams](MustReflect(UpdateFilamentParams{}), json.RawMessage(`{"filament_id":5,"price":19.99}`))
	require.NoError(t, err)
	assert.Equal(t, 5, p.FilamentID.FilamentID)

	body, err := json.Marshal(p.FilamentPatch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":19.99}`, string(body))
}

func TestUpdateNullableFields(t *testing.T) {
	s := MustReflect(UpdateFilamentParams{})

	p, err := Decode[UpdateFilamentParams](s, json.RawMessage(`{"filament_id":5,"comment":null,"vendor_id":null,"material":"PETG"}`))
	require.NoError(t, err)

	body, err := json.Marshal(p.FilamentPatch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"comment":null,"vendor_id":null,"material":"PETG"}`, string(body))

	// Bounds still apply to present non-null values.
	_, err = Decode[UpdateFilamentParams](s, json.RawMessage(`{"filament_id":5,"price":-3}`))
	assert.ErrorIs(t, err, ErrValidation)

	// The name is optional but not nullable.
	_, err = Decode[UpdateFilamentParams](s, json.RawMessage(`{"filament_id":5,"name":null}`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateVendorNullable(t *testing.T) {
	s := MustReflect(UpdateVendorParams{})

	p, err := Decode[UpdateVendorParams](s, json.RawMessage(`{"vendor_id":3,"empty_spool_weight":null,"name":"Prusa"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, p.VendorID.VendorID)

	body, err := json.Marshal(p.VendorPatch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Prusa","empty_spool_weight":null}`, string(body))
}

func TestUpdateSpoolNotNullable(t *testing.T) {
	_, err := Decode[UpdateSpoolParams](MustReflect(UpdateSpoolParams{}), json.RawMessage(`{"spool_id":1,"location":null}`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUseSpoolExactlyOneAmount(t *testing.T) {
	s := MustReflect(UseSpoolParams{})

	_, err := Decode[UseSpoolParams](s, json.RawMessage(`{"spool_id":1,"use_weight":12.5}`))
	assert.NoError(t, err)

	_, err = Decode[UseSpoolParams](s, json.RawMessage(`{"spool_id":1,"use_length":1000}`))
	assert.NoError(t, err)

	_, err = Decode[UseSpoolParams](s, json.RawMessage(`{"spool_id":1}`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Decode[UseSpoolParams](s, json.RawMessage(`{"spool_id":1,"use_weight":1,"use_length":1}`))
	assert.ErrorIs(t, err, ErrValidation)
}
