package deriver

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"installer_crm/internal/domain/entities"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func windowRates() entities.RateTable {
	return entities.RateTable{Entries: map[string]entities.RateEntry{
		"window": {Rate: 120, Unit: entities.RateUnitArea},
		"door":   {Rate: 250, Unit: entities.RateUnitCount},
		"sill":   {Rate: 35, Unit: entities.RateUnitLength},
	}}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		geometry     entities.Geometry
		validateFunc func(t *testing.T, d entities.Derived)
	}{
		{
			name: "square window charged per area",
			geometry: entities.Geometry{
				Width: 1500, Height: 1500, Quantity: 1, Type: "window",
				InstallationLocation: entities.LocationInterior, Weight: 80,
			},
			validateFunc: func(t *testing.T, d entities.Derived) {
				if !almostEqual(d.Area, 2.25) || !almostEqual(d.TotalArea, 2.25) {
					t.Errorf("area = %v / %v, want 2.25 / 2.25", d.Area, d.TotalArea)
				}
				if !almostEqual(d.Perimeter, 6) || !almostEqual(d.TotalPerimeter, 6) {
					t.Errorf("perimeter = %v / %v, want 6 / 6", d.Perimeter, d.TotalPerimeter)
				}
				if d.InstallationCosts.Total != 270.00 {
					t.Errorf("installation total = %v, want 270.00", d.InstallationCosts.Total)
				}
				if d.InstallationCosts.Rate != 120 || d.InstallationCosts.Unit != entities.RateUnitArea {
					t.Errorf("unexpected installation rate: %+v", d.InstallationCosts)
				}
				// foam 1 can, tape 6 m, sealant 1 tube, anchors 9 pcs
				if !almostEqual(d.MaterialCosts.Total, 99.2) {
					t.Errorf("material total = %v, want 99.2", d.MaterialCosts.Total)
				}
				if !almostEqual(d.TotalCost, 369.2) {
					t.Errorf("total cost = %v, want 369.2", d.TotalCost)
				}
			},
		},
		{
			name: "doors charged per count",
			geometry: entities.Geometry{
				Width: 1000, Height: 2100, Quantity: 2, Type: "door",
				InstallationLocation: entities.LocationExterior, Weight: 60,
			},
			validateFunc: func(t *testing.T, d entities.Derived) {
				if !almostEqual(d.TotalArea, 4.2) {
					t.Errorf("total area = %v, want 4.2", d.TotalArea)
				}
				if d.InstallationCosts.Basis != 2 || d.InstallationCosts.Total != 500 {
					t.Errorf("installation = %+v, want basis 2 total 500", d.InstallationCosts)
				}
			},
		},
		{
			name: "sills charged per length",
			geometry: entities.Geometry{
				Width: 1200, Height: 100, Quantity: 3, Type: "sill",
				InstallationLocation: entities.LocationExterior,
			},
			validateFunc: func(t *testing.T, d entities.Derived) {
				if !almostEqual(d.TotalPerimeter, 7.8) {
					t.Errorf("total perimeter = %v, want 7.8", d.TotalPerimeter)
				}
				if d.InstallationCosts.Total != 273 {
					t.Errorf("installation total = %v, want 273", d.InstallationCosts.Total)
				}
			},
		},
		{
			name: "unknown type uses default rate",
			geometry: entities.Geometry{
				Width: 1000, Height: 1000, Quantity: 1, Type: "skylight",
				InstallationLocation: entities.LocationInterior,
			},
			validateFunc: func(t *testing.T, d entities.Derived) {
				if d.InstallationCosts.Rate != entities.DefaultRate.Rate {
					t.Errorf("rate = %v, want default %v", d.InstallationCosts.Rate, entities.DefaultRate.Rate)
				}
				if d.InstallationCosts.Total != 100 {
					t.Errorf("installation total = %v, want 100", d.InstallationCosts.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Derive(tt.geometry, windowRates())
			if err != nil {
				t.Fatalf("Derive() unexpected error: %v", err)
			}
			tt.validateFunc(t, d)
		})
	}
}

func TestDeriveInvariants(t *testing.T) {
	geometries := []entities.Geometry{
		{Width: 600, Height: 900, Quantity: 1, Type: "window", InstallationLocation: entities.LocationInterior},
		{Width: 1234, Height: 777, Quantity: 7, Type: "window", InstallationLocation: entities.LocationExterior, Weight: 33.3},
		{Width: 3000, Height: 2500, Quantity: 4, Type: "door", InstallationLocation: entities.LocationExterior},
		{Width: 850, Height: 120, Quantity: 11, Type: "sill", InstallationLocation: entities.LocationInterior},
		{Width: 1, Height: 1, Quantity: 1, Type: "unknown", InstallationLocation: entities.LocationInterior},
	}

	for _, g := range geometries {
		d, err := Derive(g, windowRates())
		if err != nil {
			t.Fatalf("Derive(%+v) unexpected error: %v", g, err)
		}
		q := float64(g.Quantity)
		if !almostEqual(d.TotalArea, d.Area*q) {
			t.Errorf("%+v: totalArea %v != area*quantity %v", g, d.TotalArea, d.Area*q)
		}
		if !almostEqual(d.TotalPerimeter, d.Perimeter*q) {
			t.Errorf("%+v: totalPerimeter %v != perimeter*quantity %v", g, d.TotalPerimeter, d.Perimeter*q)
		}
		if math.Abs(d.TotalCost-(d.MaterialCosts.Total+d.InstallationCosts.Total)) > 0.005 {
			t.Errorf("%+v: totalCost %v != materials %v + installation %v",
				g, d.TotalCost, d.MaterialCosts.Total, d.InstallationCosts.Total)
		}
		sum := 0.0
		for _, item := range d.MaterialCosts.Items {
			if item.Quantity != math.Ceil(item.Quantity) {
				t.Errorf("%+v: material %s quantity %v is not whole", g, item.Name, item.Quantity)
			}
			sum += item.Total
		}
		if math.Abs(sum-d.MaterialCosts.Total) > 0.005 {
			t.Errorf("%+v: material items sum %v != total %v", g, sum, d.MaterialCosts.Total)
		}
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	g := entities.Geometry{Width: 1480, Height: 1430, Quantity: 3, Type: "window", InstallationLocation: entities.LocationExterior, Weight: 72}
	table := windowRates()

	first, err := Derive(g, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Derive(g, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Derive is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestValidate(t *testing.T) {
	valid := entities.Geometry{Width: 1000, Height: 1000, Quantity: 1, Type: "window", InstallationLocation: entities.LocationInterior}

	tests := []struct {
		name    string
		mutate  func(g *entities.Geometry)
		wantErr error
	}{
		{"valid", func(g *entities.Geometry) {}, nil},
		{"zero width", func(g *entities.Geometry) { g.Width = 0 }, ErrInvalidWidth},
		{"negative height", func(g *entities.Geometry) { g.Height = -5 }, ErrInvalidHeight},
		{"zero quantity", func(g *entities.Geometry) { g.Quantity = 0 }, ErrInvalidQuantity},
		{"negative weight", func(g *entities.Geometry) { g.Weight = -1 }, ErrInvalidWeight},
		{"zero weight allowed", func(g *entities.Geometry) { g.Weight = 0 }, nil},
		{"blank type", func(g *entities.Geometry) { g.Type = "  " }, ErrInvalidType},
		{"bad location", func(g *entities.Geometry) { g.InstallationLocation = "roof" }, ErrInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			err := Validate(g)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected error to wrap ErrInvalidGeometry, got %v", err)
			}
			if _, derr := Derive(g, windowRates()); !errors.Is(derr, tt.wantErr) {
				t.Fatalf("Derive should reject invalid geometry with %v, got %v", tt.wantErr, derr)
			}
		})
	}
}

func TestApplyReplacesDerivedWholesale(t *testing.T) {
	c := entities.Construction{
		Geometry: entities.Geometry{Width: 1500, Height: 1500, Quantity: 1, Type: "window", InstallationLocation: entities.LocationInterior},
	}
	c.TotalCost = 99999
	c.InstallationCosts.Total = 12345

	out, err := Apply(c, windowRates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.InstallationCosts.Total != 270 {
		t.Errorf("installation total = %v, want 270", out.InstallationCosts.Total)
	}
	if !almostEqual(out.TotalCost, out.MaterialCosts.Total+out.InstallationCosts.Total) {
		t.Errorf("total cost %v not recomputed", out.TotalCost)
	}
}
