package entities

import "time"

// CalendarEvent is a scheduled visit or installation slot.
type CalendarEvent struct {
	Meta
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	OfferID string    `json:"offer_id,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

func (e CalendarEvent) GetMeta() Meta { return e.Meta }

func (e CalendarEvent) WithMeta(m Meta) CalendarEvent {
	e.Meta = m
	return e
}

// CompanySettings describe the issuing business printed on offers and invoices.
type CompanySettings struct {
	Meta
	Name               string  `json:"name"`
	TaxID              string  `json:"tax_id"`
	Address            string  `json:"address"`
	BankAccount        string  `json:"bank_account"`
	DefaultMarginPct   float64 `json:"default_margin_pct"`
	DefaultDiscountPct float64 `json:"default_discount_pct"`
}

func (s CompanySettings) GetMeta() Meta { return s.Meta }

func (s CompanySettings) WithMeta(m Meta) CompanySettings {
	s.Meta = m
	return s
}

// TransportSettings hold the defaults used to price travel to a site.
type TransportSettings struct {
	Meta
	RatePerKm float64 `json:"rate_per_km"`
	DefaultKm float64 `json:"default_km"`
	LaborRate float64 `json:"labor_rate"`
	FlatFee   float64 `json:"flat_fee"`
}

func (s TransportSettings) GetMeta() Meta { return s.Meta }

func (s TransportSettings) WithMeta(m Meta) TransportSettings {
	s.Meta = m
	return s
}
