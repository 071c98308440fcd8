package statistics

import (
	"context"
	"fmt"
)

// DriverMemory selects the in-memory store.
const DriverMemory = "memory"

// Config selects and configures a statistics store.
type Config struct {
	Driver string `mapstructure:"driver" yaml:"driver"` // memory, postgres, sqlite or ramsql
	DSN    string `mapstructure:"dsn" yaml:"dsn"`       // Secret: connection string, unused by the memory driver
}

// Open opens the store selected by cfg. An empty driver selects the in-memory store.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverPostgres, DriverSQLite, DriverRamSQL:
		return OpenSQL(ctx, cfg.Driver, cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported statistics driver: %s", cfg.Driver)
	}
}
