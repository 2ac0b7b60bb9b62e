package identity

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/perono/internal/cryptox"
	"github.com/dmitrijs2005/perono/internal/localdb"
	"github.com/dmitrijs2005/perono/internal/repositories/accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newLocal(t *testing.T) *Local {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, localdb.RunMigrations(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })

	l := NewLocal(accounts.NewSQLiteRepository(db))
	l.now = func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }
	return l
}

func TestLocal_SignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)
	l.newID = func() string { return "uid-1" }

	id, err := l.SignUp(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)

	id, err = l.SignIn(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)
}

func TestLocal_SignUpGeneratesUUID(t *testing.T) {
	id, err := newLocal(t).SignUp(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestLocal_SignUpErrors(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)
	_, err := l.SignUp(ctx, "taken@example.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		want     *Error
	}{
		{name: "duplicate", email: "taken@example.com", password: "secret2", want: ErrEmailExists},
		{name: "duplicate other case", email: "Taken@example.com", password: "secret2", want: ErrEmailExists},
		{name: "weak password", email: "new@example.com", password: "12345", want: ErrWeakPassword},
		{name: "bad email", email: "not-an-email", password: "secret1", want: ErrInvalidEmail},
		{name: "display name form", email: "Ada <ada@example.com>", password: "secret1", want: ErrInvalidEmail},
		{name: "missing password", email: "new@example.com", password: "", want: ErrMissingPassword},
		{name: "missing email", email: "", password: "secret1", want: ErrMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.SignUp(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Message, err.Error())
		})
	}
}

func TestLocal_SignInErrors(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)
	_, err := l.SignUp(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = l.SignIn(ctx, "ada@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidPassword)

	_, err = l.SignIn(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, ErrInvalidPassword.Message, err.Error())

	_, err = l.SignIn(ctx, "ada@example.com", "")
	require.ErrorIs(t, err, ErrMissingPassword)
}

func TestLocal_SignInUnknownEmailDerivesKey(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)
	_, err := l.SignUp(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	var calls int
	var lastSalt []byte
	l.check = func(password, salt, verifier []byte) bool {
		calls++
		lastSalt = salt
		return cryptox.CheckPassword(password, salt, verifier)
	}

	_, err = l.SignIn(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, 1, calls)
	assert.Equal(t, dummySalt, lastSalt)

	_, err = l.SignIn(ctx, "ada@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, 2, calls)
	assert.NotEqual(t, dummySalt, lastSalt)
}
