package cache

import (
	"sync"

	"installer_crm/internal/usecase/interfaces"
)

var _ interfaces.IKeyValueCache = (*MemoryCache)(nil)

// MemoryCache keeps slots in process memory. Used by tests and by the
// "memory" cache driver.
type MemoryCache struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{slots: make(map[string][]byte)}
}

func (c *MemoryCache) Get(key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (c *MemoryCache) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[key] = append([]byte(nil), value...)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, key)
	return nil
}

func (c *MemoryCache) Close() error { return nil }
