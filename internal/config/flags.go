package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/perono/internal/flagx"
)

var knownFlags = []string{"-d", "-f", "-i", "-k", "-s", "-p", "-m", "-b", "-q", "-a", "-t", "-l", "-o"}

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// knownFlags are looked at.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("perono", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DBFile, "f", cfg.DBFile, "local database file name")
	fs.StringVar(&cfg.IdentityProvider, "i", cfg.IdentityProvider, "identity provider (local|firebase)")
	fs.StringVar(&cfg.FirebaseAPIKey, "k", cfg.FirebaseAPIKey, "Firebase web API key")
	fs.StringVar(&cfg.ProfileStore, "s", cfg.ProfileStore, "profile store (sqlite|postgres|mongo|s3)")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "Postgres DSN")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "MongoDB URI")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.AMQPURL, "q", cfg.AMQPURL, "AMQP URL for transition events")
	fs.StringVar(&cfg.MetricsAddr, "a", cfg.MetricsAddr, "metrics listen address")
	fs.DurationVar(&cfg.HTTPTimeout, "t", cfg.HTTPTimeout, "HTTP timeout for remote providers")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "o", cfg.LogFormat, "log format (text|json|zap)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
