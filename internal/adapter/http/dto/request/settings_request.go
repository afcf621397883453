package request

import "installer_crm/internal/domain/entities"

type CompanySettingsRequest struct {
	Name               string  `json:"name" binding:"required"`
	TaxID              string  `json:"tax_id"`
	Address            string  `json:"address"`
	BankAccount        string  `json:"bank_account"`
	DefaultMarginPct   float64 `json:"default_margin_pct"`
	DefaultDiscountPct float64 `json:"default_discount_pct"`
}

func (r CompanySettingsRequest) ToEntity() entities.CompanySettings {
	return entities.CompanySettings{
		Name:               r.Name,
		TaxID:              r.TaxID,
		Address:            r.Address,
		BankAccount:        r.BankAccount,
		DefaultMarginPct:   r.DefaultMarginPct,
		DefaultDiscountPct: r.DefaultDiscountPct,
	}
}

type TransportSettingsRequest struct {
	RatePerKm float64 `json:"rate_per_km"`
	DefaultKm float64 `json:"default_km"`
	LaborRate float64 `json:"labor_rate"`
	FlatFee   float64 `json:"flat_fee"`
}

func (r TransportSettingsRequest) ToEntity() entities.TransportSettings {
	return entities.TransportSettings{
		RatePerKm: r.RatePerKm,
		DefaultKm: r.DefaultKm,
		LaborRate: r.LaborRate,
		FlatFee:   r.FlatFee,
	}
}
