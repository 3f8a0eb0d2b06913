// Package store provides the key/value backends the ledger persists into.
package store

import (
	"fmt"

	"grant_ledger/config"
	"grant_ledger/sdk"
)

// Store is a closable, batch capable ledger state.
type Store interface {
	sdk.State
	sdk.Batcher
	Close() error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)

// Open builds the backend named by cfg.Driver.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemory(""), nil
	case config.DriverFile:
		m := NewMemory(cfg.Path)
		if err := m.LoadFromFile(); err != nil {
			return nil, err
		}
		return m, nil
	case config.DriverSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
