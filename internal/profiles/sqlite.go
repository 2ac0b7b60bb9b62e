package profiles

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/perono/internal/dbx"
	"github.com/dmitrijs2005/perono/internal/session"
)

type SQLiteStore struct {
	db dbx.DBTX
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Create(ctx context.Context, p session.UserProfile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (uid, email, created_at) VALUES (?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET email = excluded.email, created_at = excluded.created_at
	`, p.UserID, p.Email, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
