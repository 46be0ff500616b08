package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeQuery[T any](t *testing.T, input string) map[string][]string {
	t.Helper()

	var v T
	p, err := Decode[T](MustReflect(v), json.RawMessage(input))
	require.NoError(t, err)

	values, err := Query(p)
	require.NoError(t, err)

	return values
}

func TestQueryOnlyPresentFields(t *testing.T) {
	values := decodeQuery[VendorSearchParams](t, `{"name":"Prusa"}`)
	assert.Equal(t, map[string][]string{"name": {"Prusa"}}, values)
}

func TestQueryEmpty(t *testing.T) {
	values := decodeQuery[SpoolSearchParams](t, `{}`)
	assert.Empty(t, values)
}

func TestQueryFilamentFilters(t *testing.T) {
	values := decodeQuery[FilamentSearchParams](t, `{
		"vendor_name": "Prusament",
		"vendor_id": "3",
		"material": "PLA",
		"color_hex": "FF0000",
		"color_similarity_threshold": 12.5,
		"sort": "name:asc",
		"limit": 10,
		"offset": 0
	}`)

	assert.Equal(t, map[string][]string{
		"vendor.name":                {"Prusament"},
		"vendor.id":                  {"3"},
		"material":                   {"PLA"},
		"color_hex":                  {"FF0000"},
		"color_similarity_threshold": {"12.5"},
		"sort":                       {"name:asc"},
		"limit":                      {"10"},
		"offset":                     {"0"},
	}, values)
}

func TestQuerySpoolDottedKeys(t *testing.T) {
	values := decodeQuery[SpoolSearchParams](t, `{
		"filament.vendor.id": "2",
		"filament.material": "PETG",
		"allow_archived": true,
		"location": "Shelf A"
	}`)

	assert.Equal(t, map[string][]string{
		"filament.vendor.id": {"2"},
		"filament.material":  {"PETG"},
		"allow_archived":     {"true"},
		"location":           {"Shelf A"},
	}, values)
}

func TestQueryWholeNumbersAsIntegers(t *testing.T) {
	values := decodeQuery[FilamentSearchParams](t, `{"color_similarity_threshold":50}`)
	assert.Equal(t, []string{"50"}, values["color_similarity_threshold"])
}

func TestLimitBounds(t *testing.T) {
	_, err := Decode[VendorSearchParams](MustReflect(VendorSearchParams{}), json.RawMessage(`{"limit":0}`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Decode[VendorSearchParams](MustReflect(VendorSearchParams{}), json.RawMessage(`{"offset":-1}`))
	assert.ErrorIs(t, err, ErrValidation)
}
