package interfaces

import "context"

// IEntityStore is the persisted collection of one entity kind. Every method
// works on the partition of the owner carried by ctx.
//
// None of the methods fail because of the remote backend; a degraded
// (local-only) result is returned instead.
type IEntityStore[T any] interface {
	Load(ctx context.Context) []T
	Save(ctx context.Context, item T) T
	SaveAll(ctx context.Context, items []T) []T
	Delete(ctx context.Context, id string)
	Clear(ctx context.Context)
	Items(ctx context.Context) []T
	Get(ctx context.Context, id string) (T, bool)
}

// IDocumentStore persists a singleton document such as settings.
type IDocumentStore[T any] interface {
	// Get returns the stored document, or the fallback when none exists.
	Get(ctx context.Context) T
	Put(ctx context.Context, doc T) T
}
