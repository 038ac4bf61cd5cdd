package messages

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formkit/pkg/config"
)

// Config describes where catalogs come from. It is read from the
// environment by LoadCatalog.
type Config struct {
	Dir             string `env:"MESSAGES_DIR,required,notEmpty"`
	DefaultLanguage string `env:"MESSAGES_DEFAULT_LANGUAGE" envDefault:"en"`
	LogMissing      bool   `env:"MESSAGES_LOG_MISSING" envDefault:"false"`
}

// LoadCatalog reads Config from the environment and loads every message
// document found in Config.Dir. Extra options are applied after the ones
// derived from the configuration.
func LoadCatalog(ctx context.Context, options ...Option) (*Catalog, error) {
	cfg, err := config.Load[Config]()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}
	return NewCatalogFromConfig(ctx, cfg, options...)
}

// NewCatalogFromConfig loads a catalog described by cfg.
func NewCatalogFromConfig(ctx context.Context, cfg Config, options ...Option) (*Catalog, error) {
	adapter := NewDirectoryAdapter(cfg.Dir)
	if adapter == nil {
		return nil, errors.Join(ErrFailedToLoadConfig, errors.New("messages directory is empty"))
	}
	opts := append([]Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithMissingLogging(cfg.LogMissing),
	}, options...)
	return NewCatalog(ctx, adapter, opts...)
}
