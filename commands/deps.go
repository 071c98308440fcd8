package commands

import (
	"context"

	"github.com/smartcontractkit/analyzer-badges/badge"
	"github.com/smartcontractkit/analyzer-badges/config"
	"github.com/smartcontractkit/analyzer-badges/pkg/logger"
	"github.com/smartcontractkit/analyzer-badges/renderer/shields"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

// ConfigLoaderFunc loads the configuration from a file path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// LoggerFactoryFunc creates the logger handed to the badge components.
type LoggerFactoryFunc func(cfg config.LogConfig) (logger.Logger, error)

// StoreOpenerFunc opens the statistics store.
type StoreOpenerFunc func(ctx context.Context, cfg statistics.Config) (statistics.Store, error)

// ClientFactoryFunc creates the badge rendering client.
type ClientFactoryFunc func(cfg shields.Config, lggr logger.Logger) badge.Client

// defaultLoggerFactory is the production implementation that builds a zap logger from the log config.
func defaultLoggerFactory(cfg config.LogConfig) (logger.Logger, error) {
	lvl, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	lcfg := logger.Config{Level: lvl, Development: cfg.Development}

	return lcfg.New()
}

// defaultClientFactory is the production implementation that requests badges from shields.
func defaultClientFactory(cfg shields.Config, lggr logger.Logger) badge.Client {
	return shields.NewClient(cfg, lggr)
}

// Deps holds the injectable dependencies for the badges commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// LoggerFactory creates the component logger.
	// Default: a zap logger at the configured level
	LoggerFactory LoggerFactoryFunc

	// StoreOpener opens the statistics store.
	// Default: statistics.Open
	StoreOpener StoreOpenerFunc

	// ClientFactory creates the rendering client.
	// Default: shields.NewClient
	ClientFactory ClientFactoryFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.LoggerFactory == nil {
		d.LoggerFactory = defaultLoggerFactory
	}
	if d.StoreOpener == nil {
		d.StoreOpener = statistics.Open
	}
	if d.ClientFactory == nil {
		d.ClientFactory = defaultClientFactory
	}
}
