package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(*Config)
		wantErr  bool
	}{
		{
			name: "all short flags",
			args: []string{
				"-d", "/data", "-f", "x.db", "-i", "firebase", "-k", "key",
				"-s", "s3", "-p", "dsn", "-m", "mongodb://m", "-b", "bucket",
				"-q", "amqp://guest:guest@mq:5672/", "-a", ":9102", "-t", "4s",
				"-l", "debug", "-o", "zap",
			},
			expected: func(c *Config) {
				c.DataDir = "/data"
				c.DBFile = "x.db"
				c.IdentityProvider = IdentityFirebase
				c.FirebaseAPIKey = "key"
				c.ProfileStore = StoreS3
				c.PostgresDSN = "dsn"
				c.MongoURI = "mongodb://m"
				c.S3Bucket = "bucket"
				c.AMQPURL = "amqp://guest:guest@mq:5672/"
				c.MetricsAddr = ":9102"
				c.HTTPTimeout = 4 * time.Second
				c.LogLevel = "debug"
				c.LogFormat = "zap"
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x", "1", "-c", "conf.json", "-l", "warn"},
			expected: func(c *Config) { c.LogLevel = "warn" },
		},
		{
			name:    "bad duration",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
