package response

import (
	"time"

	"installer_crm/internal/domain/entities"
)

type MaterialItemResponse struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type ConstructionResponse struct {
	ID                   string                 `json:"id"`
	Number               int                    `json:"number"`
	Name                 string                 `json:"name,omitempty"`
	Width                float64                `json:"width"`
	Height               float64                `json:"height"`
	Quantity             int                    `json:"quantity"`
	Type                 string                 `json:"type"`
	InstallationLocation string                 `json:"installation_location"`
	Weight               float64                `json:"weight"`
	Area                 float64                `json:"area"`
	TotalArea            float64                `json:"total_area"`
	Perimeter            float64                `json:"perimeter"`
	TotalPerimeter       float64                `json:"total_perimeter"`
	Materials            []MaterialItemResponse `json:"materials"`
	MaterialTotal        float64                `json:"material_total"`
	InstallationRate     float64                `json:"installation_rate"`
	InstallationUnit     string                 `json:"installation_unit"`
	InstallationTotal    float64                `json:"installation_total"`
	TotalCost            float64                `json:"total_cost"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

func FromConstruction(c entities.Construction) ConstructionResponse {
	materials := make([]MaterialItemResponse, 0, len(c.MaterialCosts.Items))
	for _, m := range c.MaterialCosts.Items {
		materials = append(materials, MaterialItemResponse(m))
	}
	return ConstructionResponse{
		ID:                   c.ID,
		Number:               c.Number,
		Name:                 c.Name,
		Width:                c.Width,
		Height:               c.Height,
		Quantity:             c.Quantity,
		Type:                 c.Type,
		InstallationLocation: string(c.InstallationLocation),
		Weight:               c.Weight,
		Area:                 c.Area,
		TotalArea:            c.TotalArea,
		Perimeter:            c.Perimeter,
		TotalPerimeter:       c.TotalPerimeter,
		Materials:            materials,
		MaterialTotal:        c.MaterialCosts.Total,
		InstallationRate:     c.InstallationCosts.Rate,
		InstallationUnit:     string(c.InstallationCosts.Unit),
		InstallationTotal:    c.InstallationCosts.Total,
		TotalCost:            c.TotalCost,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func FromConstructions(items []entities.Construction) []ConstructionResponse {
	out := make([]ConstructionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromConstruction(c))
	}
	return out
}

type RateEntryResponse struct {
	Rate float64 `json:"rate"`
	Unit string  `json:"unit"`
}

type RateTableResponse struct {
	Entries   map[string]RateEntryResponse `json:"entries"`
	UpdatedAt time.Time                    `json:"updated_at,omitempty"`
}

func FromRateTable(t entities.RateTable) RateTableResponse {
	entries := make(map[string]RateEntryResponse, len(t.Entries))
	for typ, e := range t.Entries {
		entries[typ] = RateEntryResponse{Rate: e.Rate, Unit: string(e.Unit)}
	}
	return RateTableResponse{Entries: entries, UpdatedAt: t.UpdatedAt}
}

// SetRateResponse reports the stored table and the constructions it re-derived.
type SetRateResponse struct {
	Rates      RateTableResponse      `json:"rates"`
	Recomputed []ConstructionResponse `json:"recomputed"`
}
