package request

import (
	"strings"

	"installer_crm/internal/domain/entities"
)

// ConstructionRequest carries the user-entered geometry of a construction.
// Range checks are left to the deriver so every caller gets the same errors.
type ConstructionRequest struct {
	Name                 string  `json:"name"`
	Width                float64 `json:"width"`
	Height               float64 `json:"height"`
	Quantity             int     `json:"quantity"`
	Type                 string  `json:"type" binding:"required"`
	InstallationLocation string  `json:"installation_location" binding:"required"`
	Weight               float64 `json:"weight"`
}

func (r ConstructionRequest) ToGeometry() entities.Geometry {
	return entities.Geometry{
		Width:                r.Width,
		Height:               r.Height,
		Quantity:             r.Quantity,
		Type:                 strings.TrimSpace(r.Type),
		InstallationLocation: entities.InstallationLocation(strings.ToLower(strings.TrimSpace(r.InstallationLocation))),
		Weight:               r.Weight,
	}
}

type RateRequest struct {
	Rate float64 `json:"rate"`
	Unit string  `json:"unit" binding:"required"`
}

func (r RateRequest) ToEntry() entities.RateEntry {
	return entities.RateEntry{Rate: r.Rate, Unit: entities.RateUnit(strings.ToLower(strings.TrimSpace(r.Unit)))}
}
