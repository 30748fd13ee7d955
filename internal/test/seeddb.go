// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/account-service/internal/accountrepo"
	"github.com/go-petr/account-service/internal/domain"
	"github.com/go-petr/account-service/pkg/dbpkg"
)

// SeedAccount creates random Account inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	arg := RandomAccountParams()

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedAccounts creates count random Accounts inside a test transaction.
func SeedAccounts(t *testing.T, tx dbpkg.SQLInterface, count int) []domain.Account {
	t.Helper()

	accounts := make([]domain.Account, count)

	for i := range accounts {
		accounts[i] = SeedAccount(t, tx)
	}

	return accounts
}
