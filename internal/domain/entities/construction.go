package entities

// InstallationLocation tells whether a construction is fitted inside or outside.
type InstallationLocation string

const (
	LocationInterior InstallationLocation = "interior"
	LocationExterior InstallationLocation = "exterior"
)

func (l InstallationLocation) Valid() bool {
	return l == LocationInterior || l == LocationExterior
}

// Geometry holds the user-entered attributes of a construction.
// Width and Height are in millimetres, Weight in kilograms.
type Geometry struct {
	Width                float64              `json:"width"`
	Height               float64              `json:"height"`
	Quantity             int                  `json:"quantity"`
	Type                 string               `json:"type"`
	InstallationLocation InstallationLocation `json:"installation_location"`
	Weight               float64              `json:"weight"`
}

// MaterialItem is one line of the material bill of a construction.
type MaterialItem struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type MaterialCosts struct {
	Items []MaterialItem `json:"items"`
	Total float64        `json:"total"`
}

type InstallationCosts struct {
	Rate  float64  `json:"rate"`
	Unit  RateUnit `json:"unit"`
	Basis float64  `json:"basis"`
	Total float64  `json:"total"`
}

// Derived holds every field computed from Geometry and the rate table.
// It is always replaced as a whole, never field by field.
type Derived struct {
	Area              float64           `json:"area"`
	TotalArea         float64           `json:"total_area"`
	Perimeter         float64           `json:"perimeter"`
	TotalPerimeter    float64           `json:"total_perimeter"`
	MaterialCosts     MaterialCosts     `json:"material_costs"`
	InstallationCosts InstallationCosts `json:"installation_costs"`
	TotalCost         float64           `json:"total_cost"`
}

// Construction is a physical unit (window, door, facade element) to be installed.
//
// Number is the 1-based position inside the active list and is reassigned
// when a construction is deleted so the sequence stays contiguous.
type Construction struct {
	Meta
	Number int    `json:"number"`
	Name   string `json:"name,omitempty"`
	Geometry
	Derived
}

func (c Construction) GetMeta() Meta { return c.Meta }

func (c Construction) WithMeta(m Meta) Construction {
	c.Meta = m
	return c
}

// Clone returns a deep copy, used when constructions are snapshotted into offers.
func (c Construction) Clone() Construction {
	out := c
	if c.MaterialCosts.Items != nil {
		out.MaterialCosts.Items = append([]MaterialItem(nil), c.MaterialCosts.Items...)
	}
	return out
}
