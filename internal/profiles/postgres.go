package profiles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/perono/internal/dbx"
	"github.com/dmitrijs2005/perono/internal/migrations"
	"github.com/dmitrijs2005/perono/internal/session"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresStore struct {
	db dbx.DBTX
}

func NewPostgresStore(db dbx.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects to dsn through the pgx driver and applies the
// postgres migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Create(ctx context.Context, p session.UserProfile) error {
	query := `INSERT INTO profiles (uid, email, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email, created_at = EXCLUDED.created_at`

	if _, err := s.db.ExecContext(ctx, query, p.UserID, p.Email, p.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
