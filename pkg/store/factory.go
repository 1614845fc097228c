package store

import (
	"fmt"
	"path/filepath"
)

const (
	BackendDiskv  = "diskv"
	BackendSqlite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"

	sqliteFile = "todo.sqlite"
	charmDB    = "todo"
)

// Backends lists the supported backend names.
func Backends() []string {
	return []string{BackendDiskv, BackendSqlite, BackendCharm, BackendMemory}
}

// New creates the Backend named by cfg.
//
//	"diskv"  - one file per collection under the base path (default)
//	"sqlite" - SQLite database at <base path>/todo.sqlite
//	"charm"  - Charm KV database "todo", synced with the Charm server
//	"memory" - in-memory, for testing
func New(cfg Config) (Backend, error) {
	switch cfg.Backend() {
	case BackendDiskv, "":
		return NewDiskv(cfg.BasePath())
	case BackendSqlite:
		return NewSqlite(filepath.Join(cfg.BasePath(), sqliteFile))
	case BackendCharm:
		return NewCharm(charmDB)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q (supported: %v)", cfg.Backend(), Backends())
	}
}
