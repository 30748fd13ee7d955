// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/account-service/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.AccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id int32, arg domain.AccountParams) (domain.Account, error)
	Delete(ctx context.Context, id int32) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns account. DateJoined defaults to today.
func (s *Service) Create(ctx context.Context, arg domain.AccountParams) (domain.Account, error) {
	if arg.DateJoined.IsZero() {
		arg.DateJoined = domain.Today()
	}

	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update replaces the mutable fields of an existing account.
//
// A zero DateJoined keeps the stored date. The id never changes.
func (s *Service) Update(ctx context.Context, id int32, arg domain.AccountParams) (domain.Account, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	if arg.DateJoined.IsZero() {
		arg.DateJoined = current.DateJoined
	}

	account, err := s.repo.Update(ctx, id, arg)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Delete removes the account with the given id if it exists.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
