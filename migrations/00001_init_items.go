package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

// Up00001 creates the items table and its indexes
func Up00001(tx *sql.Tx) error {
	err := addTables(tx)
	if err == nil {
		err = addIndexes(tx)
	}
	return err
}

// Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.items;`)
	return err
}

func addTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE public.items
	(
		item_id text COLLATE pg_catalog."default" NOT NULL,
		collection text COLLATE pg_catalog."default" NOT NULL,
		acquisition_date timestamp without time zone NOT NULL,
		bounds geometry NOT NULL,
		item jsonb NOT NULL,
		CONSTRAINT "items_pk_itemId" PRIMARY KEY (item_id)
	)
	WITH (
		OIDS = FALSE
	);
		`)
	return err
}

func addIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE INDEX idx_items_bounds
		ON public.items USING gist
		(bounds);

		CREATE INDEX idx_items_acquisition_date
		ON public.items (acquisition_date);
		`)
	return err
}
