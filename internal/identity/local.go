package identity

import (
	"context"
	"crypto/sha256"
	"errors"
	"net/mail"
	"time"

	"github.com/dmitrijs2005/perono/internal/common"
	"github.com/dmitrijs2005/perono/internal/cryptox"
	"github.com/dmitrijs2005/perono/internal/repositories/accounts"
	"github.com/google/uuid"
)

// MinPasswordLength matches the provider's own minimum.
const MinPasswordLength = 6

// Unknown emails are checked against these so that they cost the same
// key derivation as a wrong password.
var (
	dummySalt     = make([]byte, cryptox.SaltSize)
	dummyVerifier = make([]byte, sha256.Size)
)

// Local is an identity provider backed by the device database.
type Local struct {
	repo  accounts.Repository
	now   func() time.Time
	newID func() string
	check func(password, salt, verifier []byte) bool
}

func NewLocal(repo accounts.Repository) *Local {
	return &Local{repo: repo, now: time.Now, newID: uuid.NewString, check: cryptox.CheckPassword}
}

func (l *Local) SignUp(ctx context.Context, email, password string) (string, error) {
	if err := validate(email, password); err != nil {
		return "", err
	}
	if len(password) < MinPasswordLength {
		return "", wrap(ErrWeakPassword, nil)
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return "", internalf("sign up: %w", err)
	}
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	a := &accounts.Account{
		ID:        l.newID(),
		Email:     email,
		Salt:      salt,
		Verifier:  cryptox.MakeVerifier(cryptox.DeriveKey(pw, salt)),
		CreatedAt: l.now().UTC(),
	}
	if err := l.repo.Create(ctx, a); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", wrap(ErrEmailExists, err)
		}
		return "", internalf("sign up: %w", err)
	}
	return a.ID, nil
}

// SignIn checks the password of an existing account. An unknown email gets
// the same answer as a wrong password.
func (l *Local) SignIn(ctx context.Context, email, password string) (string, error) {
	if err := validate(email, password); err != nil {
		return "", err
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	a, err := l.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			l.check(pw, dummySalt, dummyVerifier)
			return "", wrap(ErrInvalidPassword, err)
		}
		return "", internalf("sign in: %w", err)
	}

	if !l.check(pw, a.Salt, a.Verifier) {
		return "", wrap(ErrInvalidPassword, nil)
	}
	return a.ID, nil
}

func validate(email, password string) error {
	if email == "" || password == "" {
		return wrap(ErrMissingPassword, nil)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return wrap(ErrInvalidEmail, err)
	}
	return nil
}
