package entities

// RateUnit selects the quantity an installation rate is charged against.
type RateUnit string

const (
	RateUnitArea   RateUnit = "area"
	RateUnitLength RateUnit = "length"
	RateUnitCount  RateUnit = "count"
)

func (u RateUnit) Valid() bool {
	switch u {
	case RateUnitArea, RateUnitLength, RateUnitCount:
		return true
	}
	return false
}

// RateEntry is the installation price for one construction type.
type RateEntry struct {
	Rate float64  `json:"rate"`
	Unit RateUnit `json:"unit"`
}

// DefaultRate applies to construction types missing from the table.
var DefaultRate = RateEntry{Rate: 100, Unit: RateUnitArea}

// RateTable maps construction type to its installation rate.
//
// Persisted as a singleton document under the "rate_table" cache slot.
type RateTable struct {
	Meta
	Entries map[string]RateEntry `json:"entries"`
}

func (r RateTable) GetMeta() Meta { return r.Meta }

func (r RateTable) WithMeta(m Meta) RateTable {
	r.Meta = m
	return r
}

// Lookup returns the entry for typ, or DefaultRate when typ is unknown.
func (r RateTable) Lookup(typ string) RateEntry {
	if e, ok := r.Entries[typ]; ok {
		return e
	}
	return DefaultRate
}

// With returns a copy of the table with typ set to e. The receiver is not modified.
func (r RateTable) With(typ string, e RateEntry) RateTable {
	entries := make(map[string]RateEntry, len(r.Entries)+1)
	for k, v := range r.Entries {
		entries[k] = v
	}
	entries[typ] = e
	r.Entries = entries
	return r
}

// Clone returns a deep copy suitable for embedding into offer settings.
func (r RateTable) Clone() RateTable {
	entries := make(map[string]RateEntry, len(r.Entries))
	for k, v := range r.Entries {
		entries[k] = v
	}
	r.Entries = entries
	return r
}

// DefaultRateTable is seeded when no rate table has ever been stored.
func DefaultRateTable() RateTable {
	return RateTable{Entries: map[string]RateEntry{
		"window": {Rate: 120, Unit: RateUnitArea},
		"door":   {Rate: 250, Unit: RateUnitCount},
		"facade": {Rate: 95, Unit: RateUnitArea},
		"hs":     {Rate: 480, Unit: RateUnitCount},
		"sill":   {Rate: 35, Unit: RateUnitLength},
	}}
}
