// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are loaded into the process environment first (values
// already set are never overwritten), then the environment is parsed into a
// struct using `env` field tags.
//
// # Usage
//
//	type Config struct {
//		Dir  string `env:"MESSAGES_DIR,required"`
//		Lang string `env:"MESSAGES_DEFAULT_LANGUAGE" envDefault:"en"`
//	}
//
//	cfg, err := config.Load[Config]()
//	if err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// Use WithEnvFiles to read specific files and WithPrefix to namespace the
// variables. MustLoad panics on failure for configuration required at
// startup.
package config
