// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound indicates that the account is not found.
var ErrAccountNotFound = errors.New("account not found")

// Account holds customer contact data.
type Account struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  Date   `json:"date_joined"`
}

// AccountParams is the input data to create or replace an account.
type AccountParams struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  Date
}

// AccountNotFoundMsg returns the message reported to clients when no account has the given id.
func AccountNotFoundMsg(id any) string {
	return fmt.Sprintf("Account with id '%v' was not found.", id)
}
