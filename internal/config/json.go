package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/perono/internal/flagx"
	"github.com/dmitrijs2005/perono/internal/timex"
)

// JsonConfig mirrors Config for JSON decoding. Keys absent from the file
// keep the value they had before parsing.
type JsonConfig struct {
	DataDir          string         `json:"data_dir"`
	DBFile           string         `json:"db_file"`
	IdentityProvider string         `json:"identity_provider"`
	FirebaseAPIKey   string         `json:"firebase_api_key"`
	FirebaseEndpoint string         `json:"firebase_endpoint"`
	HTTPTimeout      timex.Duration `json:"http_timeout"`
	ProfileStore     string         `json:"profile_store"`
	PostgresDSN      string         `json:"postgres_dsn"`
	MongoURI         string         `json:"mongo_uri"`
	MongoDatabase    string         `json:"mongo_database"`
	MongoCollection  string         `json:"mongo_collection"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3Endpoint       string         `json:"s3_endpoint"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
	S3Prefix         string         `json:"s3_prefix"`
	AMQPURL          string         `json:"amqp_url"`
	AMQPExchange     string         `json:"amqp_exchange"`
	MetricsAddr      string         `json:"metrics_addr"`
	LogFormat        string         `json:"log_format"`
	LogLevel         string         `json:"log_level"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	fromJson(cfg, jc)
	return nil
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		DataDir:          c.DataDir,
		DBFile:           c.DBFile,
		IdentityProvider: c.IdentityProvider,
		FirebaseAPIKey:   c.FirebaseAPIKey,
		FirebaseEndpoint: c.FirebaseEndpoint,
		HTTPTimeout:      timex.Duration{Duration: c.HTTPTimeout},
		ProfileStore:     c.ProfileStore,
		PostgresDSN:      c.PostgresDSN,
		MongoURI:         c.MongoURI,
		MongoDatabase:    c.MongoDatabase,
		MongoCollection:  c.MongoCollection,
		S3Bucket:         c.S3Bucket,
		S3Region:         c.S3Region,
		S3Endpoint:       c.S3Endpoint,
		S3AccessKey:      c.S3AccessKey,
		S3SecretKey:      c.S3SecretKey,
		S3Prefix:         c.S3Prefix,
		AMQPURL:          c.AMQPURL,
		AMQPExchange:     c.AMQPExchange,
		MetricsAddr:      c.MetricsAddr,
		LogFormat:        c.LogFormat,
		LogLevel:         c.LogLevel,
	}
}

func fromJson(c *Config, jc JsonConfig) {
	c.DataDir = jc.DataDir
	c.DBFile = jc.DBFile
	c.IdentityProvider = jc.IdentityProvider
	c.FirebaseAPIKey = jc.FirebaseAPIKey
	c.FirebaseEndpoint = jc.FirebaseEndpoint
	c.HTTPTimeout = jc.HTTPTimeout.Duration
	c.ProfileStore = jc.ProfileStore
	c.PostgresDSN = jc.PostgresDSN
	c.MongoURI = jc.MongoURI
	c.MongoDatabase = jc.MongoDatabase
	c.MongoCollection = jc.MongoCollection
	c.S3Bucket = jc.S3Bucket
	c.S3Region = jc.S3Region
	c.S3Endpoint = jc.S3Endpoint
	c.S3AccessKey = jc.S3AccessKey
	c.S3SecretKey = jc.S3SecretKey
	c.S3Prefix = jc.S3Prefix
	c.AMQPURL = jc.AMQPURL
	c.AMQPExchange = jc.AMQPExchange
	c.MetricsAddr = jc.MetricsAddr
	c.LogFormat = jc.LogFormat
	c.LogLevel = jc.LogLevel
}
