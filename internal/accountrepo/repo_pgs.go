// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/account-service/internal/domain"
	"github.com/go-petr/account-service/pkg/dbpkg"
	"github.com/go-petr/account-service/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const initQuery = `
CREATE TABLE IF NOT EXISTS accounts (
	id           SERIAL PRIMARY KEY,
	name         VARCHAR(64)  NOT NULL,
	email        VARCHAR(64)  NOT NULL,
	address      VARCHAR(256) NOT NULL,
	phone_number VARCHAR(32),
	date_joined  DATE         NOT NULL DEFAULT CURRENT_DATE
)
`

// Init creates the accounts table if it does not exist yet.
func (r *RepoPGS) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, initQuery)
	return err
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (domain.Account, error) {
	var a domain.Account

	err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Address,
		&a.PhoneNumber,
		&a.DateJoined,
	)

	return a, err
}

// internal logs the driver error and hides it behind errorspkg.ErrInternal.
func internal(ctx context.Context, err error) error {
	l := zerolog.Ctx(ctx)

	if pgErr, ok := dbpkg.AsPGError(err); ok {
		l.Error().Err(err).
			Str("sqlstate", pgErr.Code).
			Str("constraint", pgErr.Constraint).
			Send()

		return errorspkg.ErrInternal
	}

	l.Error().Err(err).Send()

	return errorspkg.ErrInternal
}

const createQuery = `
INSERT INTO
    accounts (name, email, address, phone_number, date_joined)
VALUES
    ($1, $2, $3, NULLIF($4, ''), $5)
RETURNING id, name, email, address, COALESCE(phone_number, ''), date_joined
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.AccountParams) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Name, arg.Email, arg.Address, arg.PhoneNumber, arg.DateJoined)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, internal(ctx, err)
	}

	return a, nil
}

const getQuery = `
SELECT
	id, name, email, address, COALESCE(phone_number, ''), date_joined
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, internal(ctx, err)
	}

	return a, nil
}

const listQuery = `
SELECT
	id, name, email, address, COALESCE(phone_number, ''), date_joined
FROM accounts
ORDER BY id
`

// List returns all accounts ordered by id.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, internal(ctx, err)
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, internal(ctx, err)
		}

		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		return nil, internal(ctx, err)
	}

	if err := rows.Err(); err != nil {
		return nil, internal(ctx, err)
	}

	return items, nil
}

const updateQuery = `
UPDATE accounts
SET
	name = $2,
	email = $3,
	address = $4,
	phone_number = NULLIF($5, ''),
	date_joined = $6
WHERE id = $1
RETURNING id, name, email, address, COALESCE(phone_number, ''), date_joined
`

// Update replaces the mutable fields of the account with the given id and returns it.
func (r *RepoPGS) Update(ctx context.Context, id int32, arg domain.AccountParams) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, updateQuery,
		id, arg.Name, arg.Email, arg.Address, arg.PhoneNumber, arg.DateJoined)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, internal(ctx, err)
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id. Deleting a missing account is not an error.
func (r *RepoPGS) Delete(ctx context.Context, id int32) error {
	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		return internal(ctx, err)
	}

	return nil
}
