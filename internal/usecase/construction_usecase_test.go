package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"installer_crm/internal/domain/deriver"
	"installer_crm/internal/domain/entities"
)

func TestConstructionUseCase_Create(t *testing.T) {
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)
	ctx := context.Background()

	t.Run("derives before saving", func(t *testing.T) {
		c, err := uc.Create(ctx, "Living room", window())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" || c.Number != 1 {
			t.Fatalf("unexpected identity: id=%q number=%d", c.ID, c.Number)
		}
		if c.Area != 2.25 || c.TotalPerimeter != 6 || c.InstallationCosts.Total != 270 {
			t.Fatalf("unexpected derived fields: %+v", c.Derived)
		}
	})

	t.Run("invalid geometry blocks the save", func(t *testing.T) {
		before := len(s.constructions.Items(ctx))
		g := window()
		g.Width = 0
		_, err := uc.Create(ctx, "", g)
		if !errors.Is(err, deriver.ErrInvalidGeometry) {
			t.Fatalf("expected ErrInvalidGeometry, got %v", err)
		}
		if len(s.constructions.Items(ctx)) != before {
			t.Fatal("invalid construction was stored")
		}
	})

	t.Run("numbers follow the list", func(t *testing.T) {
		c, err := uc.Create(ctx, "", window())
		if err != nil {
			t.Fatal(err)
		}
		if c.Number != 2 {
			t.Fatalf("expected number 2, got %d", c.Number)
		}
	})
}

func TestConstructionUseCase_Update(t *testing.T) {
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)
	ctx := context.Background()

	c, _ := uc.Create(ctx, "", window())
	g := window()
	g.Width = 1000
	g.Height = 1000
	g.Quantity = 2
	updated, err := uc.Update(ctx, c.ID, "Kitchen", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != c.ID || updated.Number != c.Number || updated.Name != "Kitchen" {
		t.Fatalf("identity not preserved: %+v", updated)
	}
	if updated.TotalArea != 2 || updated.TotalPerimeter != 8 {
		t.Fatalf("expected re-derived totals, got %+v", updated.Derived)
	}
	if math.Abs(updated.TotalCost-(updated.MaterialCosts.Total+updated.InstallationCosts.Total)) > 1e-9 {
		t.Fatal("totalCost invariant broken")
	}

	if _, err := uc.Update(ctx, "missing", "", window()); !errors.Is(err, ErrConstructionNotFound) {
		t.Fatalf("expected ErrConstructionNotFound, got %v", err)
	}
}

func TestConstructionUseCase_DeleteRenumbers(t *testing.T) {
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)
	ctx := context.Background()

	a, _ := uc.Create(ctx, "a", window())
	b, _ := uc.Create(ctx, "b", window())
	c, _ := uc.Create(ctx, "c", window())

	if err := uc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := uc.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 constructions, got %d", len(got))
	}
	if got[0].ID != a.ID || got[0].Number != 1 || got[1].ID != c.ID || got[1].Number != 2 {
		t.Fatalf("expected [a:1 c:2], got [%s:%d %s:%d]", got[0].Name, got[0].Number, got[1].Name, got[1].Number)
	}

	if err := uc.Delete(ctx, b.ID); !errors.Is(err, ErrConstructionNotFound) {
		t.Fatalf("expected ErrConstructionNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, " "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestConstructionUseCase_SetRate(t *testing.T) {
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)
	ctx := context.Background()

	w, _ := uc.Create(ctx, "", window())
	door := window()
	door.Type = "door"
	d, _ := uc.Create(ctx, "", door)

	table, updated, err := uc.SetRate(ctx, "window", entities.RateEntry{Rate: 40, Unit: entities.RateUnitLength})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Entries["window"].Rate != 40 {
		t.Fatalf("rate table not stored: %+v", table.Entries["window"])
	}
	if len(updated) != 1 || updated[0].ID != w.ID {
		t.Fatalf("expected only the window to be recomputed, got %+v", updated)
	}

	got, _ := uc.Get(ctx, w.ID)
	if got.InstallationCosts.Unit != entities.RateUnitLength || got.InstallationCosts.Total != 240 {
		t.Fatalf("expected 40 * 6m = 240, got %+v", got.InstallationCosts)
	}
	if math.Abs(got.TotalCost-(got.MaterialCosts.Total+got.InstallationCosts.Total)) > 1e-9 {
		t.Fatal("totalCost invariant broken after recompute")
	}

	other, _ := uc.Get(ctx, d.ID)
	if other.InstallationCosts != d.InstallationCosts || !other.UpdatedAt.Equal(d.UpdatedAt) {
		t.Fatal("constructions of other types must be untouched")
	}

	if uc.Rates(ctx).Entries["window"].Unit != entities.RateUnitLength {
		t.Fatal("expected persisted rate table")
	}
}

func TestConstructionUseCase_SetRateValidation(t *testing.T) {
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)

	tests := []struct {
		name  string
		typ   string
		entry entities.RateEntry
	}{
		{"blank type", " ", entities.RateEntry{Rate: 1, Unit: entities.RateUnitArea}},
		{"negative rate", "window", entities.RateEntry{Rate: -1, Unit: entities.RateUnitArea}},
		{"unknown unit", "window", entities.RateEntry{Rate: 1, Unit: "volume"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := uc.SetRate(context.Background(), tt.typ, tt.entry); !errors.Is(err, ErrInvalidRate) {
				t.Fatalf("expected ErrInvalidRate, got %v", err)
			}
		})
	}
}

func TestConstructionUseCase_DeleteAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStores()
	uc := NewConstructionUseCase(s.constructions, s.rates, nil)

	for i := 0; i < 2; i++ {
		if _, err := uc.Create(ctx, "", window()); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	uc.DeleteAll(ctx)

	if got := uc.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
	c, err := uc.Create(ctx, "", window())
	if err != nil || c.Number != 1 {
		t.Fatalf("expected numbering to restart at 1, got %d (%v)", c.Number, err)
	}
}
