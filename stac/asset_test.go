package stac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsset_MarshalJSON_FlattensExtraFields(t *testing.T) {
	// Mock
	asset := &Asset{
		Href:      "https://example.localdomain/iw1-vh.tiff",
		Title:     "IW1 VH Data",
		MediaType: MediaTypeCOG,
		Roles:     []string{"data"},
	}
	asset.SetExtra("sar:polarizations", []string{"VH"})
	asset.SetExtra("sar:looks_range", 1)

	// Tested code
	data, err := json.Marshal(asset)

	// Asserts
	assert.Nil(t, err)
	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "https://example.localdomain/iw1-vh.tiff", parsed["href"])
	assert.Equal(t, "IW1 VH Data", parsed["title"])
	assert.Equal(t, MediaTypeCOG, parsed["type"])
	assert.Equal(t, []interface{}{"VH"}, parsed["sar:polarizations"])
	assert.Equal(t, 1.0, parsed["sar:looks_range"])
	_, hasExtraFields := parsed["ExtraFields"]
	assert.False(t, hasExtraFields)
}

func TestAsset_MarshalJSON_OmitsEmptyFields(t *testing.T) {
	// Mock
	asset := &Asset{Href: "file.xml"}

	// Tested code
	data, err := json.Marshal(asset)

	// Asserts
	assert.Nil(t, err)
	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 1)
	assert.Equal(t, "file.xml", parsed["href"])
}

func TestAsset_UnmarshalJSON_RestoresExtraFields(t *testing.T) {
	// Mock
	data := []byte(`{
		"href": "https://example.localdomain/iw1-vh.tiff",
		"title": "IW1 VH Data",
		"type": "image/tiff; application=geotiff",
		"roles": ["data"],
		"sar:polarizations": ["VH"]
	}`)

	// Tested code
	asset := &Asset{}
	err := json.Unmarshal(data, asset)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "https://example.localdomain/iw1-vh.tiff", asset.Href)
	assert.Equal(t, "IW1 VH Data", asset.Title)
	assert.Equal(t, MediaTypeGeoTIFF, asset.MediaType)
	assert.Equal(t, []string{"data"}, asset.Roles)
	assert.Equal(t, []interface{}{"VH"}, asset.ExtraFields["sar:polarizations"])
	_, fixedKeyLeaked := asset.ExtraFields["href"]
	assert.False(t, fixedKeyLeaked)
}
