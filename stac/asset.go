package stac

import "encoding/json"

// Media types for assets
const (
	MediaTypeCOG     = "image/tiff; application=geotiff; profile=cloud-optimized"
	MediaTypeGeoTIFF = "image/tiff; application=geotiff"
	MediaTypeXML     = "application/xml"
	MediaTypePNG     = "image/png"
	MediaTypeJSON    = "application/json"
)

// Extension schema URIs
const (
	SarSchemaURI        = "https://stac-extensions.github.io/sar/v1.0.0/schema.json"
	SatSchemaURI        = "https://stac-extensions.github.io/sat/v1.0.0/schema.json"
	EOSchemaURI         = "https://stac-extensions.github.io/eo/v1.0.0/schema.json"
	ProjectionSchemaURI = "https://stac-extensions.github.io/projection/v1.0.0/schema.json"
	ProcessingSchemaURI = "https://stac-extensions.github.io/processing/v1.1.0/schema.json"
	ItemAssetsSchemaURI = "https://stac-extensions.github.io/item-assets/v1.0.0/schema.json"
)

// Asset is a STAC asset object. ExtraFields carries extension properties
// (e.g. per-asset SAR fields) and is flattened into the JSON output.
type Asset struct {
	Href        string
	Title       string
	Description string
	MediaType   string
	Roles       []string
	ExtraFields map[string]interface{}
}

// SetExtra records an extension property on the asset
func (a *Asset) SetExtra(key string, value interface{}) {
	if a.ExtraFields == nil {
		a.ExtraFields = map[string]interface{}{}
	}
	a.ExtraFields[key] = value
}

// MarshalJSON flattens ExtraFields alongside the fixed asset fields
func (a *Asset) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"href": a.Href,
	}
	if a.Title != "" {
		out["title"] = a.Title
	}
	if a.Description != "" {
		out["description"] = a.Description
	}
	if a.MediaType != "" {
		out["type"] = a.MediaType
	}
	if len(a.Roles) > 0 {
		out["roles"] = a.Roles
	}
	for key, value := range a.ExtraFields {
		out[key] = value
	}
	return json.Marshal(out)
}

// UnmarshalJSON recovers an asset, splitting unknown keys into ExtraFields
func (a *Asset) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if href, ok := raw["href"].(string); ok {
		a.Href = href
	}
	if title, ok := raw["title"].(string); ok {
		a.Title = title
	}
	if desc, ok := raw["description"].(string); ok {
		a.Description = desc
	}
	if mediaType, ok := raw["type"].(string); ok {
		a.MediaType = mediaType
	}
	if roles, ok := raw["roles"].([]interface{}); ok {
		a.Roles = make([]string, 0, len(roles))
		for _, role := range roles {
			if roleStr, ok := role.(string); ok {
				a.Roles = append(a.Roles, roleStr)
			}
		}
	}
	for key, value := range raw {
		switch key {
		case "href", "title", "description", "type", "roles":
		default:
			a.SetExtra(key, value)
		}
	}
	return nil
}

// AssetDefinition describes an asset a collection's items are expected to
// carry, for the item-assets extension
type AssetDefinition struct {
	Title       string   `json:"title,omitempty"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}
