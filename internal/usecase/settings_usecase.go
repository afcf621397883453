package usecase

import (
	"context"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase/interfaces"
)

type ISettingsUseCase interface {
	Company(ctx context.Context) entities.CompanySettings
	SaveCompany(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
	Transport(ctx context.Context) entities.TransportSettings
	SaveTransport(ctx context.Context, s entities.TransportSettings) (entities.TransportSettings, error)
}

type SettingsUseCase struct {
	company   interfaces.IDocumentStore[entities.CompanySettings]
	transport interfaces.IDocumentStore[entities.TransportSettings]
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(company interfaces.IDocumentStore[entities.CompanySettings], transport interfaces.IDocumentStore[entities.TransportSettings]) *SettingsUseCase {
	return &SettingsUseCase{company: company, transport: transport}
}

func (u *SettingsUseCase) Company(ctx context.Context) entities.CompanySettings {
	return u.company.Get(ctx)
}

func (u *SettingsUseCase) SaveCompany(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	if s.DefaultMarginPct < 0 || s.DefaultDiscountPct < 0 || s.DefaultDiscountPct > 100 {
		return entities.CompanySettings{}, ErrInvalidSettings
	}
	return u.company.Put(ctx, s), nil
}

func (u *SettingsUseCase) Transport(ctx context.Context) entities.TransportSettings {
	return u.transport.Get(ctx)
}

func (u *SettingsUseCase) SaveTransport(ctx context.Context, s entities.TransportSettings) (entities.TransportSettings, error) {
	if s.RatePerKm < 0 || s.DefaultKm < 0 || s.LaborRate < 0 || s.FlatFee < 0 {
		return entities.TransportSettings{}, ErrInvalidSettings
	}
	return u.transport.Put(ctx, s), nil
}
