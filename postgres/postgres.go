// Package postgres implements the persistence collaborator on PostgreSQL.
// Predicate fragments are compiled into WHERE clauses over a join against
// the owners table, so visibility filtering and counting happen in the
// database.
package postgres

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Driver wraps the sql handle shared by the stores.
type Driver struct {
	db *sql.DB
}

func (d *Driver) Open(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.db = db
	return nil
}

func (d *Driver) Close() error {
	return d.db.Close()
}
