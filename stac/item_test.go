package stac

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestNewItem(t *testing.T) {
	// Mock
	geometry := geojson.NewPolygon([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	bbox := geojson.BoundingBox{0, 0, 1, 1}
	datetime := time.Date(2022, 4, 12, 5, 45, 46, 829000000, time.UTC)

	// Tested code
	item := NewItem("test-item", geometry, bbox, datetime)

	// Asserts
	assert.Equal(t, "Feature", item.Type)
	assert.Equal(t, Version, item.StacVersion)
	assert.Equal(t, "test-item", item.ID)
	assert.Equal(t, "2022-04-12T05:45:46.829000Z", item.Properties["datetime"])
	assert.NotNil(t, item.Assets)
	assert.NotNil(t, item.Links)
}

func TestItem_AddExtension_Deduplicates(t *testing.T) {
	// Mock
	item := NewItem("test-item", nil, nil, time.Now())

	// Tested code
	item.AddExtension(SarSchemaURI)
	item.AddExtension(SatSchemaURI)
	item.AddExtension(SarSchemaURI)

	// Asserts
	assert.Equal(t, []string{SarSchemaURI, SatSchemaURI}, item.StacExtensions)
}

func TestItem_AddAsset_DuplicateKey(t *testing.T) {
	// Mock
	item := NewItem("test-item", nil, nil, time.Now())

	// Tested code
	err := item.AddAsset("thumbnail", &Asset{Href: "a.png"})
	dupErr := item.AddAsset("thumbnail", &Asset{Href: "b.png"})

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, dupErr)
	assert.Contains(t, dupErr.Error(), "thumbnail")
	assert.Equal(t, "a.png", item.Assets["thumbnail"].Href)
}

func TestItem_String_IsValidJSON(t *testing.T) {
	// Mock
	item := NewItem("test-item", nil, geojson.BoundingBox{0, 0, 1, 1}, time.Now())
	item.Collection = "test-collection"
	item.AddLink(Link{Rel: "self", Href: "https://example.localdomain/items/test-item"})

	// Tested code
	output := item.String()

	// Asserts
	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(output), &parsed))
	assert.Equal(t, "test-item", parsed["id"])
	assert.Equal(t, "test-collection", parsed["collection"])
	assert.Equal(t, "Feature", parsed["type"])
}

func TestFormatTime_UTCAndMicroseconds(t *testing.T) {
	// Mock
	zone := time.FixedZone("CEST", 2*3600)
	local := time.Date(2022, 4, 12, 7, 45, 46, 829123000, zone)

	// Tested code
	formatted := FormatTime(local)

	// Asserts
	assert.Equal(t, "2022-04-12T05:45:46.829123Z", formatted)
}
