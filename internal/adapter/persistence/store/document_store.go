package store

import (
	"context"
	"encoding/json"
	"sync"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase/interfaces"
)

// DocumentID is the fixed id of every singleton document, so each owner has
// exactly one remote record per document kind.
const DocumentID = "default"

// DocumentStore persists one document per kind with the same remote-first,
// cache-always pipeline as EntityStore. The cache slot holds a JSON object.
type DocumentStore[T entities.Entity[T]] struct {
	kind     string
	remote   interfaces.IRemoteTable[T]
	cache    interfaces.IKeyValueCache
	probe    interfaces.IReachability
	fallback func() T
	settings

	mu sync.Mutex
}

var _ interfaces.IDocumentStore[entities.RateTable] = (*DocumentStore[entities.RateTable])(nil)

// NewDocumentStore builds a document store. fallback supplies the document
// returned when nothing has been stored yet.
func NewDocumentStore[T entities.Entity[T]](kind string, cache interfaces.IKeyValueCache, remote interfaces.IRemoteTable[T], probe interfaces.IReachability, fallback func() T, opts ...Option) *DocumentStore[T] {
	if remote == nil || probe == nil {
		probe = unreachable{}
	}
	s := &DocumentStore[T]{
		kind:     kind,
		remote:   remote,
		cache:    cache,
		probe:    probe,
		fallback: fallback,
		settings: newSettings(opts),
	}
	s.log = s.log.With("kind", kind)
	return s
}

// Get prefers the remote document, then the cached one, then the fallback.
func (s *DocumentStore[T]) Get(ctx context.Context) T {
	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) ([]T, error) {
		return s.remote.List(ctx, owner)
	})
	s.report("get", res.Err())
	owner := ownerOf(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.OK() {
		for _, doc := range res.Value() {
			if doc.GetMeta().ID == DocumentID {
				s.writeCacheLocked(owner, doc)
				return doc
			}
		}
	}
	if doc, ok := s.readCacheLocked(owner); ok {
		return doc
	}
	return s.fallback()
}

func (s *DocumentStore[T]) Put(ctx context.Context, doc T) T {
	m := doc.GetMeta()
	now := s.now()
	m.ID = DocumentID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	doc = doc.WithMeta(m)

	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) (T, error) {
		return s.remote.Upsert(ctx, owner, doc)
	})
	s.report("put", res.Err())
	persisted := res.OrElse(func(error) T { return doc })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCacheLocked(ownerOf(ctx), persisted)
	return persisted
}

func (s *DocumentStore[T]) readCacheLocked(owner string) (T, bool) {
	var doc T
	raw, ok, err := s.cache.Get(slotKey(s.kind, owner))
	if err != nil {
		s.log.Warn("local cache read failed", "error", err)
		s.metrics.CacheError(s.kind, "read")
		return doc, false
	}
	if !ok {
		return doc, false
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("local cache slot is corrupt, using defaults", "error", err)
		s.metrics.CacheError(s.kind, "read")
		var zero T
		return zero, false
	}
	return doc, true
}

func (s *DocumentStore[T]) writeCacheLocked(owner string, doc T) {
	raw, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("failed to encode cache document", "error", err)
		s.metrics.CacheError(s.kind, "write")
		return
	}
	if err := s.cache.Set(slotKey(s.kind, owner), raw); err != nil {
		s.log.Error("local cache write failed", "error", err)
		s.metrics.CacheError(s.kind, "write")
	}
}

func (s *DocumentStore[T]) report(op string, err error) {
	report(s.log, s.metrics, s.kind, op, err)
}
