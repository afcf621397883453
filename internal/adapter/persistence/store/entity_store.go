// Package store implements the local-first persistence layer: a remote
// table is attempted first and the local cache is always written, so the
// cache and the in-memory list of an owner never disagree.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/identity"
	"installer_crm/internal/observability"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase/interfaces"
)

// Cache slot keys, one per persisted kind.
const (
	KindClients           = "clients"
	KindOffers            = "offers"
	KindConstructions     = "constructions"
	KindCalendarEvents    = "calendar_events"
	KindTransportSettings = "transport_settings"
	KindCompanySettings   = "company_settings"
	KindRateTable         = "rate_table"
)

type settings struct {
	now     func() time.Time
	newID   func() string
	log     *logger.Logger
	metrics *observability.Metrics
}

type Option func(*settings)

func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

func WithMetrics(m *observability.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

func newSettings(opts []Option) settings {
	s := settings{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// EntityStore owns the canonical list of one entity kind, partitioned by
// owner. Anonymous callers share the "" partition. Each partition has its own
// cache slot and is hydrated by Load on first use.
//
// The mutex only guards the partitions and the cache writes; remote calls
// run outside of it so a slow remote does not block unrelated calls.
type EntityStore[T entities.Entity[T]] struct {
	kind   string
	remote interfaces.IRemoteTable[T]
	cache  interfaces.IKeyValueCache
	probe  interfaces.IReachability
	settings

	mu    sync.Mutex
	parts map[string]*partition[T]
}

type partition[T any] struct {
	items    []T
	hydrated bool
}

var _ interfaces.IEntityStore[entities.Client] = (*EntityStore[entities.Client])(nil)

// NewEntityStore builds a store for kind. remote may be nil for a local-only
// store.
func NewEntityStore[T entities.Entity[T]](kind string, cache interfaces.IKeyValueCache, remote interfaces.IRemoteTable[T], probe interfaces.IReachability, opts ...Option) *EntityStore[T] {
	if remote == nil || probe == nil {
		probe = unreachable{}
	}
	s := &EntityStore[T]{
		kind:     kind,
		remote:   remote,
		cache:    cache,
		probe:    probe,
		settings: newSettings(opts),
		parts:    map[string]*partition[T]{},
	}
	s.log = s.log.With("kind", kind)
	return s
}

// slotKey is the cache slot of one owner's partition.
func slotKey(kind, owner string) string {
	if owner == "" {
		return kind
	}
	return kind + ":" + owner
}

func ownerOf(ctx context.Context) string {
	owner, _ := identity.Owner(ctx)
	return owner
}

// Load refreshes the caller's partition from the remote when reachable,
// otherwise from its cache slot.
func (s *EntityStore[T]) Load(ctx context.Context) []T {
	owner := ownerOf(ctx)
	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) ([]T, error) {
		return s.remote.List(ctx, owner)
	})
	s.report("load", res.Err())

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.partLocked(owner)
	p.items = res.OrElse(func(error) []T { return s.readCache(owner) })
	p.hydrated = true
	if res.OK() {
		s.writeCacheLocked(owner, p.items)
	}
	return cloneList(p.items)
}

// Save assigns identity and timestamps, attempts the remote upsert and
// always writes the updated partition to the cache.
func (s *EntityStore[T]) Save(ctx context.Context, item T) T {
	owner := s.hydrate(ctx)
	item = s.stamp(item, true)

	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) (T, error) {
		return s.remote.Upsert(ctx, owner, item)
	})
	s.report("save", res.Err())
	persisted := res.OrElse(func(error) T { return item })

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.partLocked(owner)
	p.items = upsert(p.items, persisted)
	s.writeCacheLocked(owner, p.items)
	return persisted
}

// SaveAll replaces the caller's whole collection with items in one pass.
// Records without an id get one; UpdatedAt is only set where it is zero,
// so callers bump it on the records they actually changed.
func (s *EntityStore[T]) SaveAll(ctx context.Context, items []T) []T {
	owner := ownerOf(ctx)
	stamped := make([]T, len(items))
	for i, it := range items {
		stamped[i] = s.stamp(it, false)
	}

	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) (struct{}, error) {
		return struct{}{}, s.remote.UpsertAll(ctx, owner, stamped)
	})
	s.report("save_all", res.Err())

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.partLocked(owner)
	p.items = stamped
	p.hydrated = true
	s.writeCacheLocked(owner, p.items)
	return cloneList(p.items)
}

// Delete removes the record locally first; a remote failure does not undo it.
func (s *EntityStore[T]) Delete(ctx context.Context, id string) {
	owner := s.hydrate(ctx)

	s.mu.Lock()
	p := s.partLocked(owner)
	out := p.items[:0:0]
	for _, it := range p.items {
		if it.GetMeta().ID != id {
			out = append(out, it)
		}
	}
	p.items = out
	s.writeCacheLocked(owner, p.items)
	s.mu.Unlock()

	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) (struct{}, error) {
		return struct{}{}, s.remote.Delete(ctx, owner, id)
	})
	s.report("delete", res.Err())
}

// Clear empties the caller's partition and its cache slot, then best-effort
// deletes remotely.
func (s *EntityStore[T]) Clear(ctx context.Context) {
	owner := ownerOf(ctx)

	s.mu.Lock()
	p := s.partLocked(owner)
	p.items = nil
	p.hydrated = true
	s.writeCacheLocked(owner, p.items)
	s.mu.Unlock()

	res := Attempt(ctx, s.probe, func(ctx context.Context, owner string) (struct{}, error) {
		return struct{}{}, s.remote.DeleteAll(ctx, owner)
	})
	s.report("clear", res.Err())
}

// Items returns a copy of the caller's partition.
func (s *EntityStore[T]) Items(ctx context.Context) []T {
	owner := s.hydrate(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneList(s.partLocked(owner).items)
}

func (s *EntityStore[T]) Get(ctx context.Context, id string) (T, bool) {
	owner := s.hydrate(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.partLocked(owner).items {
		if it.GetMeta().ID == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// hydrate loads the caller's partition the first time it is touched and
// returns the owner it belongs to.
func (s *EntityStore[T]) hydrate(ctx context.Context) string {
	owner := ownerOf(ctx)
	s.mu.Lock()
	p, ok := s.parts[owner]
	hydrated := ok && p.hydrated
	s.mu.Unlock()
	if !hydrated {
		s.Load(ctx)
	}
	return owner
}

func (s *EntityStore[T]) partLocked(owner string) *partition[T] {
	p, ok := s.parts[owner]
	if !ok {
		p = &partition[T]{}
		s.parts[owner] = p
	}
	return p
}

func (s *EntityStore[T]) stamp(item T, touch bool) T {
	m := item.GetMeta()
	now := s.now()
	if m.ID == "" {
		m.ID = s.newID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if touch || m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	return item.WithMeta(m)
}

func upsert[T entities.Entity[T]](items []T, item T) []T {
	id := item.GetMeta().ID
	for i, it := range items {
		if it.GetMeta().ID == id {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func (s *EntityStore[T]) readCache(owner string) []T {
	raw, ok, err := s.cache.Get(slotKey(s.kind, owner))
	if err != nil {
		s.log.Warn("local cache read failed", "error", err)
		s.metrics.CacheError(s.kind, "read")
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("local cache slot is corrupt, treating as empty", "error", err)
		s.metrics.CacheError(s.kind, "read")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (s *EntityStore[T]) writeCacheLocked(owner string, items []T) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error("failed to encode cache snapshot", "error", err)
		s.metrics.CacheError(s.kind, "write")
		return
	}
	if err := s.cache.Set(slotKey(s.kind, owner), raw); err != nil {
		s.log.Error("local cache write failed", "error", err)
		s.metrics.CacheError(s.kind, "write")
	}
}

func (s *EntityStore[T]) report(op string, err error) {
	report(s.log, s.metrics, s.kind, op, err)
}

func report(log *logger.Logger, metrics *observability.Metrics, kind, op string, err error) {
	switch {
	case err == nil:
		metrics.RemoteAttempt(kind, op, observability.OutcomeOK)
		return
	case errors.Is(err, ErrUnreachable):
		metrics.RemoteAttempt(kind, op, observability.OutcomeUnreachable)
		log.Debug("remote unreachable, using local cache", "op", op)
	default:
		metrics.RemoteAttempt(kind, op, observability.OutcomeError)
		log.Warn("remote call failed, using local cache", "op", op, "error", err)
	}
	metrics.LocalFallback(kind, op)
}

func cloneList[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
