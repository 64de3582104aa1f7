package stac

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// Version is the STAC spec version emitted by this package
const Version = "1.0.0"

// TimeLayout is the datetime layout used in item properties
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// FormatTime renders a timestamp the way STAC item properties expect
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Link is a STAC link object
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Provider is a STAC provider object
type Provider struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Item is a STAC Item: a GeoJSON feature with a fixed set of catalog fields
type Item struct {
	Type           string                 `json:"type"`
	StacVersion    string                 `json:"stac_version"`
	StacExtensions []string               `json:"stac_extensions,omitempty"`
	ID             string                 `json:"id"`
	Geometry       interface{}            `json:"geometry"`
	Bbox           geojson.BoundingBox    `json:"bbox,omitempty"`
	Properties     map[string]interface{} `json:"properties"`
	Links          []Link                 `json:"links"`
	Assets         map[string]*Asset      `json:"assets"`
	Collection     string                 `json:"collection,omitempty"`
}

// NewItem creates an empty item with the given identity and footprint
func NewItem(id string, geometry interface{}, bbox geojson.BoundingBox, datetime time.Time) *Item {
	return &Item{
		Type:        "Feature",
		StacVersion: Version,
		ID:          id,
		Geometry:    geometry,
		Bbox:        bbox,
		Properties:  map[string]interface{}{"datetime": FormatTime(datetime)},
		Links:       []Link{},
		Assets:      map[string]*Asset{},
	}
}

// AddExtension records an extension schema URI on the item, once
func (item *Item) AddExtension(schemaURI string) {
	for _, existing := range item.StacExtensions {
		if existing == schemaURI {
			return
		}
	}
	item.StacExtensions = append(item.StacExtensions, schemaURI)
}

// AddAsset attaches an asset under the given key; keys must be unique
func (item *Item) AddAsset(key string, asset *Asset) error {
	if _, exists := item.Assets[key]; exists {
		return fmt.Errorf("Duplicate asset key: %s", key)
	}
	item.Assets[key] = asset
	return nil
}

// AddLink appends a link to the item
func (item *Item) AddLink(link Link) {
	item.Links = append(item.Links, link)
}

// String returns the item as indented STAC JSON
func (item *Item) String() string {
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// ItemCreator is an interface for data that can convert itself to a STAC item
type ItemCreator interface {
	StacItem() (*Item, error)
}

// ItemPropertyMixin is an interface for data that augments an existing item
type ItemPropertyMixin interface {
	Apply(*Item) error
}
