// Package deriver computes the geometric and cost fields of a construction
// from its user-entered attributes and the installation rate table.
//
// Everything here is pure: no I/O, no clock, no shared state.
package deriver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"installer_crm/internal/domain/entities"
)

var (
	ErrInvalidGeometry = errors.New("invalid construction geometry")

	ErrInvalidWidth    = fmt.Errorf("%w: width must be greater than zero", ErrInvalidGeometry)
	ErrInvalidHeight   = fmt.Errorf("%w: height must be greater than zero", ErrInvalidGeometry)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidGeometry)
	ErrInvalidWeight   = fmt.Errorf("%w: weight cannot be negative", ErrInvalidGeometry)
	ErrInvalidType     = fmt.Errorf("%w: type is required", ErrInvalidGeometry)
	ErrInvalidLocation = fmt.Errorf("%w: installation location must be interior or exterior", ErrInvalidGeometry)
)

// Material is a consumable whose usage grows with the installed perimeter.
type Material struct {
	Name string
	Unit string
	// Coefficient is the amount consumed per metre of total perimeter.
	Coefficient float64
	UnitPrice   float64
}

// Materials is the fixed catalogue applied to every construction.
var Materials = []Material{
	{Name: "PU foam", Unit: "can", Coefficient: 0.1, UnitPrice: 32.00},
	{Name: "Expansion tape", Unit: "m", Coefficient: 1.0, UnitPrice: 4.50},
	{Name: "Silicone sealant", Unit: "tube", Coefficient: 0.15, UnitPrice: 24.00},
	{Name: "Frame anchor", Unit: "pcs", Coefficient: 1.5, UnitPrice: 1.80},
}

// ceilTolerance absorbs float noise such as 6.000000000000001 so that exact
// multiples do not round up to the next unit.
const ceilTolerance = 1e-9

// Validate rejects geometry that cannot be derived.
func Validate(g entities.Geometry) error {
	switch {
	case g.Width <= 0:
		return ErrInvalidWidth
	case g.Height <= 0:
		return ErrInvalidHeight
	case g.Quantity <= 0:
		return ErrInvalidQuantity
	case g.Weight < 0:
		return ErrInvalidWeight
	case strings.TrimSpace(g.Type) == "":
		return ErrInvalidType
	case !g.InstallationLocation.Valid():
		return ErrInvalidLocation
	}
	return nil
}

// Derive validates g and computes all derived fields against table.
func Derive(g entities.Geometry, table entities.RateTable) (entities.Derived, error) {
	if err := Validate(g); err != nil {
		return entities.Derived{}, err
	}

	qty := float64(g.Quantity)
	area := (g.Width * g.Height) / 1_000_000
	perimeter := 2 * (g.Width + g.Height) / 1000
	totalArea := area * qty
	totalPerimeter := perimeter * qty

	materials := materialCosts(totalPerimeter)
	installation := installationCosts(table.Lookup(g.Type), totalArea, totalPerimeter, qty)

	return entities.Derived{
		Area:              area,
		TotalArea:         totalArea,
		Perimeter:         perimeter,
		TotalPerimeter:    totalPerimeter,
		MaterialCosts:     materials,
		InstallationCosts: installation,
		TotalCost:         roundCents(materials.Total + installation.Total),
	}, nil
}

// Apply re-derives c in place of its previous derived fields.
func Apply(c entities.Construction, table entities.RateTable) (entities.Construction, error) {
	d, err := Derive(c.Geometry, table)
	if err != nil {
		return c, err
	}
	c.Derived = d
	return c, nil
}

func materialCosts(totalPerimeter float64) entities.MaterialCosts {
	items := make([]entities.MaterialItem, 0, len(Materials))
	total := 0.0
	for _, m := range Materials {
		q := math.Ceil(totalPerimeter*m.Coefficient - ceilTolerance)
		if q < 0 {
			q = 0
		}
		line := roundCents(q * m.UnitPrice)
		items = append(items, entities.MaterialItem{
			Name:      m.Name,
			Unit:      m.Unit,
			Quantity:  q,
			UnitPrice: m.UnitPrice,
			Total:     line,
		})
		total += line
	}
	return entities.MaterialCosts{Items: items, Total: roundCents(total)}
}

func installationCosts(rate entities.RateEntry, totalArea, totalPerimeter, qty float64) entities.InstallationCosts {
	var basis float64
	switch rate.Unit {
	case entities.RateUnitLength:
		basis = totalPerimeter
	case entities.RateUnitCount:
		basis = qty
	default:
		basis = totalArea
	}
	return entities.InstallationCosts{
		Rate:  rate.Rate,
		Unit:  rate.Unit,
		Basis: basis,
		Total: roundCents(rate.Rate * basis),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
