package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lmizzoni/sentinel1/stac"
	"github.com/lmizzoni/sentinel1/util"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

// IndexedItem is one converted STAC item as stored in the index
type IndexedItem struct {
	ItemID          string
	Collection      string
	AcquisitionDate time.Time
	BoundsGeoJSON   []byte
	ItemJSON        []byte
}

// StacItem implements the stac.ItemCreator interface by recovering the
// stored item document
func (ii IndexedItem) StacItem() (*stac.Item, error) {
	item := stac.Item{}
	if err := json.Unmarshal(ii.ItemJSON, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
