package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	IdentityLocal    = "local"
	IdentityFirebase = "firebase"

	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreS3       = "s3"
)

// Config holds runtime settings for the perono client.
type Config struct {
	DataDir string `env:"PERONO_DATA_DIR"`
	DBFile  string `env:"PERONO_DB_FILE"`

	IdentityProvider string        `env:"PERONO_IDENTITY_PROVIDER"`
	FirebaseAPIKey   string        `env:"PERONO_FIREBASE_API_KEY"`
	FirebaseEndpoint string        `env:"PERONO_FIREBASE_ENDPOINT"`
	HTTPTimeout      time.Duration `env:"PERONO_HTTP_TIMEOUT"`

	ProfileStore    string `env:"PERONO_PROFILE_STORE"`
	PostgresDSN     string `env:"PERONO_POSTGRES_DSN"`
	MongoURI        string `env:"PERONO_MONGO_URI"`
	MongoDatabase   string `env:"PERONO_MONGO_DATABASE"`
	MongoCollection string `env:"PERONO_MONGO_COLLECTION"`
	S3Bucket        string `env:"PERONO_S3_BUCKET"`
	S3Region        string `env:"PERONO_S3_REGION"`
	S3Endpoint      string `env:"PERONO_S3_ENDPOINT"`
	S3AccessKey     string `env:"PERONO_S3_ACCESS_KEY"`
	S3SecretKey     string `env:"PERONO_S3_SECRET_KEY"`
	S3Prefix        string `env:"PERONO_S3_PREFIX"`

	AMQPURL      string `env:"PERONO_AMQP_URL"`
	AMQPExchange string `env:"PERONO_AMQP_EXCHANGE"`

	MetricsAddr string `env:"PERONO_METRICS_ADDR"`
	LogFormat   string `env:"PERONO_LOG_FORMAT"`
	LogLevel    string `env:"PERONO_LOG_LEVEL"`
}

// LoadDefaults populates c with defaults suitable for a single local user.
func (c *Config) LoadDefaults() {
	c.DataDir = ".perono"
	c.DBFile = "perono.db"
	c.IdentityProvider = IdentityLocal
	c.FirebaseEndpoint = "https://identitytoolkit.googleapis.com/v1"
	c.HTTPTimeout = 10 * time.Second
	c.ProfileStore = StoreSQLite
	c.MongoDatabase = "perono"
	c.MongoCollection = "user"
	c.S3Region = "us-east-1"
	c.S3Prefix = "user/"
	c.AMQPExchange = "perono.session"
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the flags in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected providers have what they need.
func (c *Config) Validate() error {
	var errs []error

	switch c.IdentityProvider {
	case IdentityLocal:
	case IdentityFirebase:
		if c.FirebaseAPIKey == "" {
			errs = append(errs, errors.New("firebase identity provider requires an API key"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown identity provider %q", c.IdentityProvider))
	}

	switch c.ProfileStore {
	case StoreSQLite:
	case StorePostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres profile store requires a DSN"))
		}
	case StoreMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("mongo profile store requires a URI"))
		}
	case StoreS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("s3 profile store requires a bucket"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown profile store %q", c.ProfileStore))
	}

	if c.HTTPTimeout < 0 {
		errs = append(errs, errors.New("http timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func lookupDotEnv() string {
	if p := os.Getenv("PERONO_ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}
