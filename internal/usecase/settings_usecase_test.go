package usecase

import (
	"context"
	"errors"
	"testing"

	"installer_crm/internal/domain/entities"
)

func TestSettingsUseCase(t *testing.T) {
	s := newTestStores()
	uc := NewSettingsUseCase(s.company, s.transport)
	ctx := context.Background()

	if _, err := uc.SaveCompany(ctx, entities.CompanySettings{DefaultDiscountPct: 101}); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	if _, err := uc.SaveTransport(ctx, entities.TransportSettings{RatePerKm: -1}); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}

	saved, err := uc.SaveCompany(ctx, entities.CompanySettings{Name: "Fenster GmbH", DefaultMarginPct: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" || uc.Company(ctx).Name != "Fenster GmbH" {
		t.Fatalf("company settings not stored: %+v", saved)
	}

	if _, err := uc.SaveTransport(ctx, entities.TransportSettings{RatePerKm: 0.6, DefaultKm: 25}); err != nil {
		t.Fatal(err)
	}
	if got := uc.Transport(ctx); got.RatePerKm != 0.6 || got.DefaultKm != 25 {
		t.Fatalf("unexpected transport settings: %+v", got)
	}
}
