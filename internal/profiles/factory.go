package profiles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/perono/internal/config"
	"github.com/dmitrijs2005/perono/internal/session"
)

// Closer releases what a store built by New holds open.
type Closer func(ctx context.Context) error

func nopCloser(context.Context) error { return nil }

// New builds the store selected by cfg.ProfileStore. local is the already
// open device database used by the sqlite store.
func New(ctx context.Context, cfg *config.Config, local *sql.DB) (session.ProfileStore, Closer, error) {
	switch cfg.ProfileStore {
	case config.StoreSQLite:
		return NewSQLiteStore(local), nopCloser, nil

	case config.StorePostgres:
		db, err := OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), func(context.Context) error { return db.Close() }, nil

	case config.StoreMongo:
		s, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.StoreS3:
		client, err := NewS3Client(ctx, S3Options{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nopCloser, nil

	default:
		return nil, nil, fmt.Errorf("unknown profile store %q", cfg.ProfileStore)
	}
}
