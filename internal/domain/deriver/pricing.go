package deriver

import "installer_crm/internal/domain/entities"

// PriceOffer summarises an offer from its construction snapshot and settings.
//
//	net      = constructions + labor + transport
//	margin   = net * marginPct / 100
//	discount = (net + margin) * discountPct / 100
//	total    = net + margin - discount
func PriceOffer(constructions []entities.Construction, s entities.OfferSettings) entities.OfferTotals {
	sum := 0.0
	for _, c := range constructions {
		sum += c.TotalCost
	}
	sum = roundCents(sum)

	labor := roundCents(s.LaborHours * s.LaborRate)
	transport := roundCents(s.TransportKm*s.TransportRatePerKm + s.TransportFlatFee)
	net := roundCents(sum + labor + transport)
	margin := roundCents(net * s.MarginPct / 100)
	discount := roundCents((net + margin) * s.DiscountPct / 100)

	return entities.OfferTotals{
		Constructions: sum,
		Labor:         labor,
		Transport:     transport,
		Net:           net,
		Margin:        margin,
		Discount:      discount,
		Total:         roundCents(net + margin - discount),
	}
}
