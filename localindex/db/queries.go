package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/lmizzoni/sentinel1/stac"
)

// GetItemByID fetches a single indexed item by its item ID
func GetItemByID(tx *sql.Tx, itemID string) (*IndexedItem, error) {
	item := IndexedItem{}

	rows, err := tx.Query(`
		SELECT item_id, collection, acquisition_date, ST_AsGeoJSON(bounds), item
		FROM public.items
		WHERE item_id=$1
		LIMIT 1`,
		itemID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	err = rows.Scan(&item.ItemID, &item.Collection, &item.AcquisitionDate, &item.BoundsGeoJSON, &item.ItemJSON)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// SearchItems finds indexed items intersecting the bounding box and
// acquired within the date range
func SearchItems(tx *sql.Tx, bbox geojson.BoundingBox, minAcquiredDate, maxAcquiredDate time.Time) ([]IndexedItem, error) {
	rows, err := tx.Query(`
		SELECT item_id, collection, acquisition_date, ST_AsGeoJSON(bounds), item
		FROM public.items
		WHERE acquisition_date >= $1 AND acquisition_date <= $2
		AND bounds && ST_MakeEnvelope($3, $4, $5, $6, 4326)
		ORDER BY acquisition_date`,
		minAcquiredDate, maxAcquiredDate, bbox[0], bbox[1], bbox[2], bbox[3],
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []IndexedItem{}
	for rows.Next() {
		item := IndexedItem{}
		if err = rows.Scan(&item.ItemID, &item.Collection, &item.AcquisitionDate, &item.BoundsGeoJSON, &item.ItemJSON); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpsertItem inserts or replaces a converted item in the index. The
// acquisition date and footprint are denormalized for searching.
func UpsertItem(tx *sql.Tx, item *stac.Item, acquisitionDate time.Time) error {
	itemJSON, err := json.Marshal(item)
	if err != nil {
		return err
	}
	boundsJSON, err := json.Marshal(item.Geometry)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO public.items (item_id, collection, acquisition_date, bounds, item)
		VALUES ($1, $2, $3, ST_SetSRID(ST_GeomFromGeoJSON($4), 4326), $5)
		ON CONFLICT (item_id) DO UPDATE SET
			collection = EXCLUDED.collection,
			acquisition_date = EXCLUDED.acquisition_date,
			bounds = EXCLUDED.bounds,
			item = EXCLUDED.item`,
		item.ID, item.Collection, acquisitionDate, string(boundsJSON), string(itemJSON),
	)
	return err
}
