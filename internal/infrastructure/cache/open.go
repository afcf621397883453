package cache

import (
	"fmt"

	"installer_crm/internal/config"
	"installer_crm/internal/usecase/interfaces"
)

// Cache is a key-value cache that holds resources until closed.
type Cache interface {
	interfaces.IKeyValueCache
	Close() error
}

// Open returns the cache selected by cfg.Driver.
func Open(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Driver {
	case config.CacheDriverBadger:
		return OpenBadger(cfg.Path)
	case config.CacheDriverSQLite:
		return OpenSQLite(cfg.Path)
	case config.CacheDriverMemory:
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
	}
}
