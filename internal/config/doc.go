// Package config loads runtime configuration for the perono client.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Environment variables prefixed PERONO_, optionally seeded from a .env
//     file in the working directory.
//  4. Command-line flags.
//
// Supported flags
//
//	-d string     data directory
//	-f string     local database file name
//	-i string     identity provider: local | firebase
//	-k string     Firebase web API key
//	-s string     profile store: sqlite | postgres | mongo | s3
//	-p string     Postgres DSN
//	-m string     MongoDB URI
//	-b string     S3 bucket
//	-q string     AMQP URL for transition events
//	-a string     metrics listen address
//	-t duration   HTTP timeout for remote providers
//	-l string     log level
//	-o string     log format: text | json | zap
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and 10000000000 are both valid:
//
//	{
//	  "data_dir": "~/.perono",
//	  "identity_provider": "firebase",
//	  "firebase_api_key": "AIza...",
//	  "http_timeout": "10s",
//	  "profile_store": "mongo",
//	  "mongo_uri": "mongodb://127.0.0.1:27017"
//	}
package config
