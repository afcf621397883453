package entities

// OfferStatus represents the lifecycle of an offer sent to a client.
type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "draft"
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusDraft, OfferStatusSent, OfferStatusAccepted, OfferStatusRejected:
		return true
	}
	return false
}

// OfferSettings are the pricing parameters captured with an offer.
type OfferSettings struct {
	MarginPct          float64   `json:"margin_pct"`
	DiscountPct        float64   `json:"discount_pct"`
	LaborHours         float64   `json:"labor_hours"`
	LaborRate          float64   `json:"labor_rate"`
	TransportKm        float64   `json:"transport_km"`
	TransportRatePerKm float64   `json:"transport_rate_per_km"`
	TransportFlatFee   float64   `json:"transport_flat_fee"`
	RateTable          RateTable `json:"rate_table"`
}

// OfferTotals is the price summary computed from the snapshot and settings.
type OfferTotals struct {
	Constructions float64 `json:"constructions"`
	Labor         float64 `json:"labor"`
	Transport     float64 `json:"transport"`
	Net           float64 `json:"net"`
	Margin        float64 `json:"margin"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

// Offer is a quote prepared for a client.
//
// Relationship notes:
//   - ClientID holds the client's display name, not its id. Renaming a client
//     rewrites this field on every offer that carries the old name.
//   - Constructions is a copy taken when the offer was assembled; later edits
//     to the construction list do not change it.
type Offer struct {
	Meta
	ClientID      string         `json:"client_id"`
	Title         string         `json:"title"`
	Location      string         `json:"location"`
	Status        OfferStatus    `json:"status"`
	Constructions []Construction `json:"constructions"`
	Settings      OfferSettings  `json:"settings"`
	Totals        OfferTotals    `json:"totals"`
	Notes         string         `json:"notes,omitempty"`
}

func (o Offer) GetMeta() Meta { return o.Meta }

func (o Offer) WithMeta(m Meta) Offer {
	o.Meta = m
	return o
}
