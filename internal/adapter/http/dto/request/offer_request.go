package request

import (
	"strings"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase"
)

// OfferHeaderRequest is step one of the offer flow. client_id is the
// client's display name.
type OfferHeaderRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (r OfferHeaderRequest) ToHeader() usecase.OfferHeader {
	return usecase.OfferHeader{ClientName: r.ClientID, Title: r.Title, Location: r.Location, Notes: r.Notes}
}

type RateEntryRequest struct {
	Rate float64 `json:"rate"`
	Unit string  `json:"unit"`
}

type OfferSettingsRequest struct {
	MarginPct          float64                     `json:"margin_pct"`
	DiscountPct        float64                     `json:"discount_pct"`
	LaborHours         float64                     `json:"labor_hours"`
	LaborRate          float64                     `json:"labor_rate"`
	TransportKm        float64                     `json:"transport_km"`
	TransportRatePerKm float64                     `json:"transport_rate_per_km"`
	TransportFlatFee   float64                     `json:"transport_flat_fee"`
	RateTable          map[string]RateEntryRequest `json:"rate_table,omitempty"`
}

func (r OfferSettingsRequest) ToEntity() entities.OfferSettings {
	s := entities.OfferSettings{
		MarginPct:          r.MarginPct,
		DiscountPct:        r.DiscountPct,
		LaborHours:         r.LaborHours,
		LaborRate:          r.LaborRate,
		TransportKm:        r.TransportKm,
		TransportRatePerKm: r.TransportRatePerKm,
		TransportFlatFee:   r.TransportFlatFee,
	}
	if len(r.RateTable) > 0 {
		s.RateTable.Entries = make(map[string]entities.RateEntry, len(r.RateTable))
		for typ, e := range r.RateTable {
			s.RateTable.Entries[typ] = entities.RateEntry{Rate: e.Rate, Unit: entities.RateUnit(strings.ToLower(e.Unit))}
		}
	}
	return s
}

// AssembleOfferRequest is step two: the constructions to snapshot and,
// optionally, new pricing settings.
type AssembleOfferRequest struct {
	ConstructionIDs []string              `json:"construction_ids" binding:"required"`
	Settings        *OfferSettingsRequest `json:"settings"`
}

func (r AssembleOfferRequest) SettingsEntity() *entities.OfferSettings {
	if r.Settings == nil {
		return nil
	}
	s := r.Settings.ToEntity()
	return &s
}

type OfferStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OfferStatusRequest) ToStatus() entities.OfferStatus {
	return entities.OfferStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// OfferUpdateRequest replaces header, settings and notes of an offer. The
// construction snapshot is kept unless AssembleConstructions is called again.
type OfferUpdateRequest struct {
	ClientID string               `json:"client_id" binding:"required"`
	Title    string               `json:"title" binding:"required"`
	Location string               `json:"location"`
	Status   string               `json:"status"`
	Notes    string               `json:"notes"`
	Settings OfferSettingsRequest `json:"settings"`
}

func (r OfferUpdateRequest) Apply(o entities.Offer) entities.Offer {
	o.ClientID = r.ClientID
	o.Title = r.Title
	o.Location = r.Location
	o.Status = entities.OfferStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	o.Notes = r.Notes
	rates := o.Settings.RateTable
	o.Settings = r.Settings.ToEntity()
	if len(o.Settings.RateTable.Entries) == 0 {
		o.Settings.RateTable = rates
	}
	return o
}
