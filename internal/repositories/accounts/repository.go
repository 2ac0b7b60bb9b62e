// Package accounts stores the credentials of locally registered users.
package accounts

import (
	"context"
	"time"
)

// Account is a local identity. Only the salt and the verifier derived from
// the password are kept.
type Account struct {
	ID        string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// Repository persists accounts. Create fails with common.ErrorAlreadyExists
// when the email is taken; GetByEmail fails with common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
