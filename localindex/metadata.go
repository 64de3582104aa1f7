package localindex

import (
	"database/sql"

	"github.com/lmizzoni/sentinel1/localindex/db"
	"github.com/lmizzoni/sentinel1/stac"
)

func getItem(tx *sql.Tx, itemID string) (stac.ItemCreator, error) {
	indexed, err := db.GetItemByID(tx, itemID)
	if err != nil {
		return nil, err
	}
	return indexed, nil
}
