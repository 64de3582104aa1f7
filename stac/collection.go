package stac

import "encoding/json"

// SpatialExtent is the spatial part of a collection extent
type SpatialExtent struct {
	Bbox [][]float64 `json:"bbox"`
}

// TemporalExtent is the temporal part of a collection extent; open
// intervals use null endpoints
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Extent is a STAC collection extent
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// Collection is a STAC Collection
type Collection struct {
	Type           string                     `json:"type"`
	StacVersion    string                     `json:"stac_version"`
	StacExtensions []string                   `json:"stac_extensions,omitempty"`
	ID             string                     `json:"id"`
	Title          string                     `json:"title,omitempty"`
	Description    string                     `json:"description"`
	Keywords       []string                   `json:"keywords,omitempty"`
	License        string                     `json:"license"`
	Providers      []Provider                 `json:"providers,omitempty"`
	Extent         Extent                     `json:"extent"`
	Summaries      map[string]interface{}     `json:"summaries,omitempty"`
	Links          []Link                     `json:"links"`
	ItemAssets     map[string]AssetDefinition `json:"item_assets,omitempty"`
}

// NewCollection creates an empty collection with the given identity
func NewCollection(id, description string, extent Extent) *Collection {
	return &Collection{
		Type:        "Collection",
		StacVersion: Version,
		ID:          id,
		Description: description,
		License:     "proprietary",
		Extent:      extent,
		Summaries:   map[string]interface{}{},
		Links:       []Link{},
	}
}

// AddExtension records an extension schema URI on the collection, once
func (c *Collection) AddExtension(schemaURI string) {
	for _, existing := range c.StacExtensions {
		if existing == schemaURI {
			return
		}
	}
	c.StacExtensions = append(c.StacExtensions, schemaURI)
}

// AddLink appends a link to the collection
func (c *Collection) AddLink(link Link) {
	c.Links = append(c.Links, link)
}

// String returns the collection as indented STAC JSON
func (c *Collection) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
