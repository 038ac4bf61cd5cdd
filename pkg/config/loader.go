package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option customizes Load.
type Option func(*options)

type options struct {
	files    []string
	explicit bool
	prefix   string
}

// WithEnvFiles loads the given files instead of the default ".env".
// Unlike the default file, explicitly listed files must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.files = files
			o.explicit = true
		}
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses the environment into a new T.
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, file := range o.files {
		if err := godotenv.Load(file); err != nil {
			// The default .env file is optional.
			if !o.explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
