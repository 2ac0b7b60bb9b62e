// Package flagstore persists session.Flags in the local metadata table.
//
// Each flag is one row keyed by its name, with "true" or "false" as value.
// Missing rows read as false, which yields the first-launch state.
package flagstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/perono/internal/dbx"
	"github.com/dmitrijs2005/perono/internal/repositories/metadata"
	"github.com/dmitrijs2005/perono/internal/session"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) (session.Flags, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	loggedIn, err := readBool(ctx, repo, session.KeyIsLoggedIn)
	if err != nil {
		return session.Flags{}, err
	}
	onboarded, err := readBool(ctx, repo, session.KeyHasCompletedOnboarding)
	if err != nil {
		return session.Flags{}, err
	}

	return session.Flags{IsLoggedIn: loggedIn, HasCompletedOnboarding: onboarded}, nil
}

// Save writes both flags in one transaction.
func (s *Store) Save(ctx context.Context, f session.Flags) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyIsLoggedIn, formatBool(f.IsLoggedIn)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyHasCompletedOnboarding, formatBool(f.HasCompletedOnboarding))
	})
}

func readBool(ctx context.Context, repo metadata.Repository, key string) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, fmt.Errorf("flag %s: %w", key, err)
	}
	return v, nil
}

func formatBool(v bool) []byte {
	return []byte(strconv.FormatBool(v))
}
