package localindex

import (
	"database/sql"
	"time"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/lmizzoni/sentinel1/localindex/db"
	"github.com/lmizzoni/sentinel1/stac"
)

func discoverItems(tx *sql.Tx, bbox geojson.BoundingBox, minAcquiredDate, maxAcquiredDate time.Time) (stac.ItemCollectionCreator, error) {
	indexed, err := db.SearchItems(tx, bbox, minAcquiredDate, maxAcquiredDate)
	if err != nil {
		return nil, err
	}

	multiResult := stac.MultiItemResult{
		ItemCreators: make([]stac.ItemCreator, len(indexed)),
	}
	for i, item := range indexed {
		multiResult.ItemCreators[i] = item
	}

	return multiResult, nil
}
