// Package config loads SDK configuration from environment variables.
//
// Configuration structs are plain Go structs tagged with `env` field
// tags; Load parses the process environment into them, bootstrapping
// from a .env file when one is present. Each distinct struct type is
// parsed once per process and cached, so repeated loads from different
// parts of an application see identical values.
//
// # Usage
//
//	type Config struct {
//		DatabaseURL string        `env:"FIRETREE_DATABASE_URL,required"`
//		Secret      string        `env:"FIRETREE_SECRET"`
//		Timeout     time.Duration `env:"FIRETREE_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Use LoadEnv to point at a non-default .env file, and ResetCache in
// tests that need to re-parse after mutating the environment.
package config
