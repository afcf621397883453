package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"installer_crm/internal/domain/entities"
)

var errRemoteDown = errors.New("remote down")

// fakeTable is an in-memory remote table keyed by owner and id.
type fakeTable[T entities.Entity[T]] struct {
	mu    sync.Mutex
	rows  map[string]map[string]T
	fail  bool
	calls int
}

func newFakeTable[T entities.Entity[T]]() *fakeTable[T] {
	return &fakeTable[T]{rows: map[string]map[string]T{}}
}

func (f *fakeTable[T]) bucket(owner string) map[string]T {
	b, ok := f.rows[owner]
	if !ok {
		b = map[string]T{}
		f.rows[owner] = b
	}
	return b
}

func (f *fakeTable[T]) List(_ context.Context, owner string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	out := make([]T, 0, len(f.rows[owner]))
	for _, v := range f.rows[owner] {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetMeta().CreatedAt.Before(out[j].GetMeta().CreatedAt)
	})
	return out, nil
}

func (f *fakeTable[T]) Upsert(_ context.Context, owner string, item T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		var zero T
		return zero, errRemoteDown
	}
	b := f.bucket(owner)
	if prev, ok := b[item.GetMeta().ID]; ok {
		m := item.GetMeta()
		m.CreatedAt = prev.GetMeta().CreatedAt
		item = item.WithMeta(m)
	}
	b[item.GetMeta().ID] = item
	return item, nil
}

func (f *fakeTable[T]) UpsertAll(_ context.Context, owner string, items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	b := f.bucket(owner)
	for _, it := range items {
		b[it.GetMeta().ID] = it
	}
	return nil
}

func (f *fakeTable[T]) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	delete(f.bucket(owner), id)
	return nil
}

func (f *fakeTable[T]) DeleteAll(_ context.Context, owner string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	delete(f.rows, owner)
	return nil
}

func (f *fakeTable[T]) Ping(context.Context, string) error {
	if f.fail {
		return errRemoteDown
	}
	return nil
}

type staticProbe bool

func (p staticProbe) Probe(context.Context) bool { return bool(p) }

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "id-" + strconv.Itoa(n)
	}
}
