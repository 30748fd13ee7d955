// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-petr/account-service/internal/accountrepo"
	"github.com/go-petr/account-service/pkg/dbpkg"
)

// Flush removes all accounts and resets the id sequence.
func Flush(t *testing.T, db dbpkg.SQLInterface) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(), `TRUNCATE TABLE accounts RESTART IDENTITY`); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	if err := accountrepo.NewRepoPGS(db).Init(context.Background()); err != nil {
		t.Fatalf("schema initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupTX sets up a database transaction to be used in tests.
//
// Once the tests are done it will rollback the transaction.
func SetupTX(t *testing.T, driver, source string) *sql.Tx {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("db.Begin() failed: %v", err)
	}

	if err := accountrepo.NewRepoPGS(tx).Init(context.Background()); err != nil {
		t.Fatalf("schema initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Fatalf("tx.Rollback() failed: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("db.Close() failed: %v", err)
		}
	})

	return tx
}
