package response

import (
	"time"

	"installer_crm/internal/domain/entities"
)

type CompanySettingsResponse struct {
	Name               string    `json:"name"`
	TaxID              string    `json:"tax_id"`
	Address            string    `json:"address"`
	BankAccount        string    `json:"bank_account"`
	DefaultMarginPct   float64   `json:"default_margin_pct"`
	DefaultDiscountPct float64   `json:"default_discount_pct"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromCompanySettings(s entities.CompanySettings) CompanySettingsResponse {
	return CompanySettingsResponse{
		Name:               s.Name,
		TaxID:              s.TaxID,
		Address:            s.Address,
		BankAccount:        s.BankAccount,
		DefaultMarginPct:   s.DefaultMarginPct,
		DefaultDiscountPct: s.DefaultDiscountPct,
		UpdatedAt:          s.UpdatedAt,
	}
}

type TransportSettingsResponse struct {
	RatePerKm float64   `json:"rate_per_km"`
	DefaultKm float64   `json:"default_km"`
	LaborRate float64   `json:"labor_rate"`
	FlatFee   float64   `json:"flat_fee"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTransportSettings(s entities.TransportSettings) TransportSettingsResponse {
	return TransportSettingsResponse{
		RatePerKm: s.RatePerKm,
		DefaultKm: s.DefaultKm,
		LaborRate: s.LaborRate,
		FlatFee:   s.FlatFee,
		UpdatedAt: s.UpdatedAt,
	}
}
