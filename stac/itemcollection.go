package stac

import "encoding/json"

// ItemCollection is a GeoJSON FeatureCollection of STAC items, e.g. as
// results from a search endpoint
type ItemCollection struct {
	Type     string  `json:"type"`
	Features []*Item `json:"features"`
	Links    []Link  `json:"links,omitempty"`
}

// NewItemCollection bundles items into a collection document
func NewItemCollection(items []*Item) *ItemCollection {
	if items == nil {
		items = []*Item{}
	}
	return &ItemCollection{Type: "FeatureCollection", Features: items}
}

// String returns the item collection as indented JSON
func (ic *ItemCollection) String() string {
	data, err := json.MarshalIndent(ic, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// ItemCollectionCreator is an interface for data that can convert itself
// to an item collection
type ItemCollectionCreator interface {
	StacItemCollection() (*ItemCollection, error)
}

// MultiItemResult bundles multiple item creators together
type MultiItemResult struct {
	ItemCreators []ItemCreator
}

// StacItemCollection implements the ItemCollectionCreator interface
func (result MultiItemResult) StacItemCollection() (*ItemCollection, error) {
	var err error
	items := make([]*Item, len(result.ItemCreators))
	for i, creator := range result.ItemCreators {
		items[i], err = creator.StacItem()
		if err != nil {
			return nil, err
		}
	}
	return NewItemCollection(items), nil
}
