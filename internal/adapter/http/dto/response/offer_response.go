package response

import (
	"time"

	"installer_crm/internal/domain/entities"
)

type OfferSettingsResponse struct {
	MarginPct          float64           `json:"margin_pct"`
	DiscountPct        float64           `json:"discount_pct"`
	LaborHours         float64           `json:"labor_hours"`
	LaborRate          float64           `json:"labor_rate"`
	TransportKm        float64           `json:"transport_km"`
	TransportRatePerKm float64           `json:"transport_rate_per_km"`
	TransportFlatFee   float64           `json:"transport_flat_fee"`
	RateTable          RateTableResponse `json:"rate_table"`
}

type OfferTotalsResponse struct {
	Constructions float64 `json:"constructions"`
	Labor         float64 `json:"labor"`
	Transport     float64 `json:"transport"`
	Net           float64 `json:"net"`
	Margin        float64 `json:"margin"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

type OfferResponse struct {
	ID            string                 `json:"id"`
	ClientID      string                 `json:"client_id"`
	Title         string                 `json:"title"`
	Location      string                 `json:"location"`
	Status        string                 `json:"status"`
	Constructions []ConstructionResponse `json:"constructions"`
	Settings      OfferSettingsResponse  `json:"settings"`
	Totals        OfferTotalsResponse    `json:"totals"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromOffer(o entities.Offer) OfferResponse {
	s := o.Settings
	return OfferResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		Title:         o.Title,
		Location:      o.Location,
		Status:        string(o.Status),
		Constructions: FromConstructions(o.Constructions),
		Settings: OfferSettingsResponse{
			MarginPct:          s.MarginPct,
			DiscountPct:        s.DiscountPct,
			LaborHours:         s.LaborHours,
			LaborRate:          s.LaborRate,
			TransportKm:        s.TransportKm,
			TransportRatePerKm: s.TransportRatePerKm,
			TransportFlatFee:   s.TransportFlatFee,
			RateTable:          FromRateTable(s.RateTable),
		},
		Totals:    OfferTotalsResponse(o.Totals),
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOffers(items []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromOffer(o))
	}
	return out
}
