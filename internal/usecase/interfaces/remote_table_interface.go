package interfaces

import "context"

// IRemoteTable abstracts one remote table per entity kind, partitioned by
// owner id. Every method may fail for connectivity or auth reasons.
type IRemoteTable[T any] interface {
	// List returns the owner's records ordered by creation time.
	List(ctx context.Context, ownerID string) ([]T, error)
	// Upsert writes item and returns the representation stored remotely.
	Upsert(ctx context.Context, ownerID string, item T) (T, error)
	// UpsertAll writes items in as few round trips as the backend allows.
	UpsertAll(ctx context.Context, ownerID string, items []T) error
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAll(ctx context.Context, ownerID string) error
	// Ping performs the cheapest query that proves the table answers for ownerID.
	Ping(ctx context.Context, ownerID string) error
}
