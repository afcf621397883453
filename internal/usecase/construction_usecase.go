package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"installer_crm/internal/domain/deriver"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase/interfaces"
)

// IConstructionUseCase manages the construction list and the rate table
// that prices it.
type IConstructionUseCase interface {
	List(ctx context.Context) []entities.Construction
	Get(ctx context.Context, id string) (entities.Construction, error)
	Create(ctx context.Context, name string, g entities.Geometry) (entities.Construction, error)
	Update(ctx context.Context, id, name string, g entities.Geometry) (entities.Construction, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context)
	Rates(ctx context.Context) entities.RateTable
	SetRate(ctx context.Context, typ string, entry entities.RateEntry) (entities.RateTable, []entities.Construction, error)
	RecomputeAllOfType(ctx context.Context, typ string, table entities.RateTable) ([]entities.Construction, error)
}

type ConstructionUseCase struct {
	store interfaces.IEntityStore[entities.Construction]
	rates interfaces.IDocumentStore[entities.RateTable]
	log   *logger.Logger
}

var _ IConstructionUseCase = (*ConstructionUseCase)(nil)

func NewConstructionUseCase(store interfaces.IEntityStore[entities.Construction], rates interfaces.IDocumentStore[entities.RateTable], log *logger.Logger) *ConstructionUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ConstructionUseCase{store: store, rates: rates, log: log}
}

func (u *ConstructionUseCase) List(ctx context.Context) []entities.Construction {
	return sortByNumber(u.store.Load(ctx))
}

func (u *ConstructionUseCase) Get(ctx context.Context, id string) (entities.Construction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Construction{}, ErrInvalidID
	}
	c, ok := u.store.Get(ctx, id)
	if !ok {
		return entities.Construction{}, ErrConstructionNotFound
	}
	return c, nil
}

// Create validates and derives the construction before it is stored at the
// end of the list.
func (u *ConstructionUseCase) Create(ctx context.Context, name string, g entities.Geometry) (entities.Construction, error) {
	c := entities.Construction{
		Name:     strings.TrimSpace(name),
		Geometry: normalizeGeometry(g),
		Number:   len(u.store.Items(ctx)) + 1,
	}
	c, err := deriver.Apply(c, u.rates.Get(ctx))
	if err != nil {
		return entities.Construction{}, err
	}
	return u.store.Save(ctx, c), nil
}

// Update replaces the geometry and re-derives every derived field.
func (u *ConstructionUseCase) Update(ctx context.Context, id, name string, g entities.Geometry) (entities.Construction, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return entities.Construction{}, err
	}
	c.Name = strings.TrimSpace(name)
	c.Geometry = normalizeGeometry(g)
	c, err = deriver.Apply(c, u.rates.Get(ctx))
	if err != nil {
		return entities.Construction{}, err
	}
	return u.store.Save(ctx, c), nil
}

// Delete removes one construction and renumbers the rest, keeping their
// relative order.
func (u *ConstructionUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	u.store.Delete(ctx, id)

	remaining := sortByNumber(u.store.Items(ctx))
	now := time.Now().UTC()
	changed := false
	for i := range remaining {
		if remaining[i].Number != i+1 {
			remaining[i].Number = i + 1
			remaining[i].UpdatedAt = now
			changed = true
		}
	}
	if changed {
		u.store.SaveAll(ctx, remaining)
	}
	return nil
}

// DeleteAll empties the caller's construction list, locally and remotely.
func (u *ConstructionUseCase) DeleteAll(ctx context.Context) {
	u.store.Clear(ctx)
	u.log.Info("construction list cleared")
}

func (u *ConstructionUseCase) Rates(ctx context.Context) entities.RateTable {
	return u.rates.Get(ctx)
}

// SetRate stores the new entry and re-derives every construction of typ.
func (u *ConstructionUseCase) SetRate(ctx context.Context, typ string, entry entities.RateEntry) (entities.RateTable, []entities.Construction, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" || entry.Rate < 0 || !entry.Unit.Valid() {
		return entities.RateTable{}, nil, ErrInvalidRate
	}
	table := u.rates.Put(ctx, u.rates.Get(ctx).With(typ, entry))

	updated, err := u.RecomputeAllOfType(ctx, typ, table)
	if err != nil {
		return entities.RateTable{}, nil, err
	}
	return table, updated, nil
}

// RecomputeAllOfType re-derives every stored construction of typ with table
// and persists the whole collection in one pass. Other types are untouched.
func (u *ConstructionUseCase) RecomputeAllOfType(ctx context.Context, typ string, table entities.RateTable) ([]entities.Construction, error) {
	items := u.store.Items(ctx)
	now := time.Now().UTC()
	var updated []entities.Construction
	for i, c := range items {
		if c.Type != typ {
			continue
		}
		next, err := deriver.Apply(c, table)
		if err != nil {
			return nil, fmt.Errorf("recompute construction %s: %w", c.ID, err)
		}
		next.UpdatedAt = now
		items[i] = next
		updated = append(updated, next)
	}
	if len(updated) == 0 {
		return []entities.Construction{}, nil
	}
	u.store.SaveAll(ctx, items)
	u.log.Info("constructions recomputed after rate change", "type", typ, "count", len(updated))
	return updated, nil
}

func normalizeGeometry(g entities.Geometry) entities.Geometry {
	g.Type = strings.TrimSpace(g.Type)
	g.InstallationLocation = entities.InstallationLocation(strings.ToLower(strings.TrimSpace(string(g.InstallationLocation))))
	return g
}

func sortByNumber(items []entities.Construction) []entities.Construction {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Number < items[j].Number })
	return items
}
