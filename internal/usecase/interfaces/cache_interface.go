package interfaces

// IKeyValueCache is the local durable cache. Each entity kind owns one slot
// addressed by a fixed key and holding the JSON array of that kind.
//
// Calls are synchronous; implementations must be safe for concurrent use.
type IKeyValueCache interface {
	// Get returns the slot value and whether the slot exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
