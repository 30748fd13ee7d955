package test

import (
	"github.com/go-petr/account-service/internal/domain"
	"github.com/go-petr/account-service/pkg/randompkg"
)

// RandomAccountParams returns random input data for creating an account.
func RandomAccountParams() domain.AccountParams {
	return domain.AccountParams{
		Name:        randompkg.Name(),
		Email:       randompkg.Email(),
		Address:     randompkg.Address(),
		PhoneNumber: randompkg.PhoneNumber(),
		DateJoined:  domain.NewDate(randompkg.Date()),
	}
}

// RandomAccount returns random account with a random id.
func RandomAccount() domain.Account {
	arg := RandomAccountParams()

	return domain.Account{
		ID:          randompkg.IntBetween(1, 1000),
		Name:        arg.Name,
		Email:       arg.Email,
		Address:     arg.Address,
		PhoneNumber: arg.PhoneNumber,
		DateJoined:  arg.DateJoined,
	}
}
