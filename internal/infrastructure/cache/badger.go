package cache

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"installer_crm/internal/usecase/interfaces"
)

var _ interfaces.IKeyValueCache = (*BadgerCache)(nil)

// BadgerCache stores each slot as one badger key.
type BadgerCache struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database at path. An empty path
// opens an in-memory database.
func OpenBadger(path string) (*BadgerCache, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger cache: %w", err)
	}
	return &BadgerCache{db: db}, nil
}

func (c *BadgerCache) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache slot %q: %w", key, err)
	}
	return value, true, nil
}

func (c *BadgerCache) Set(key string, value []byte) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write cache slot %q: %w", key, err)
	}
	return nil
}

func (c *BadgerCache) Delete(key string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete cache slot %q: %w", key, err)
	}
	return nil
}

func (c *BadgerCache) Close() error {
	return c.db.Close()
}
