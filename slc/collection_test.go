package slc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmizzoni/sentinel1/stac"
)

func TestCreateCollection(t *testing.T) {
	// Tested code
	collection := CreateCollection("")

	// Asserts
	assert.Equal(t, "Collection", collection.Type)
	assert.Equal(t, CollectionID, collection.ID)
	assert.Equal(t, CollectionTitle, collection.Title)
	assert.Equal(t, "proprietary", collection.License)
	assert.Equal(t, Keywords, collection.Keywords)
	assert.Equal(t, []stac.Provider{Provider}, collection.Providers)

	assert.Contains(t, collection.StacExtensions, stac.SarSchemaURI)
	assert.Contains(t, collection.StacExtensions, stac.SatSchemaURI)
	assert.Contains(t, collection.StacExtensions, stac.EOSchemaURI)
	assert.Contains(t, collection.StacExtensions, stac.ItemAssetsSchemaURI)

	assert.Equal(t, [][]float64{{-180.0, -90.0, 180.0, 90.0}}, collection.Extent.Spatial.Bbox)
	interval := collection.Extent.Temporal.Interval
	assert.Len(t, interval, 1)
	assert.Equal(t, CollectionStart, *interval[0][0])
	assert.Nil(t, interval[0][1])
}

func TestCreateCollection_Summaries(t *testing.T) {
	// Tested code
	collection := CreateCollection("")

	// Asserts
	assert.Equal(t, []string{Constellation}, collection.Summaries["constellation"])
	assert.Equal(t, Platforms, collection.Summaries["platform"])
	assert.Equal(t, SummaryInstrumentMode, collection.Summaries["sar:instrument_mode"])
	assert.Equal(t, SummaryPolarizations, collection.Summaries["sar:polarizations"])
	assert.Equal(t, SummaryOrbitState, collection.Summaries["sat:orbit_state"])
	assert.Equal(t, SummaryProductType, collection.Summaries["sar:product_type"])
}

func TestCreateCollection_ItemAssets(t *testing.T) {
	// Tested code
	collection := CreateCollection("")

	// Asserts
	assert.NotEmpty(t, collection.ItemAssets)
	assert.Contains(t, collection.ItemAssets, "safe-manifest")
	assert.Contains(t, collection.ItemAssets, "thumbnail")
	assert.Contains(t, collection.ItemAssets, "vh")
	assert.Contains(t, collection.ItemAssets, "schema-product-vh")
	assert.Contains(t, collection.ItemAssets, "schema-calibration-hh")
	assert.Contains(t, collection.ItemAssets, "schema-noise-vv")
}

func TestCreateCollection_SelfLink(t *testing.T) {
	// Tested code
	withHref := CreateCollection("https://example.localdomain/collection.json")
	withoutHref := CreateCollection("")

	// Asserts
	foundSelf := false
	for _, link := range withHref.Links {
		if link.Rel == "self" {
			foundSelf = true
			assert.Equal(t, "https://example.localdomain/collection.json", link.Href)
		}
	}
	assert.True(t, foundSelf)

	for _, link := range withoutHref.Links {
		assert.NotEqual(t, "self", link.Rel)
	}
}

func TestCreateCollection_String_IsValidJSON(t *testing.T) {
	// Tested code
	output := CreateCollection("").String()

	// Asserts
	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(output), &parsed))
	assert.Equal(t, CollectionID, parsed["id"])
	assert.Equal(t, "Collection", parsed["type"])
}
