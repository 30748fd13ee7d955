// Package dbpkg provides helpers to make db initialization and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
	"time"

	// Drivers selectable through DB_DRIVER: "postgres" and "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
