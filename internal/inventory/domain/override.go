package domain

import "strings"

// Override is the authoritative per-unit floor-area breakdown and bilingual
// pricing from the spreadsheet-exported secondary source.
type Override struct {
	Block           string  `json:"block"`
	Unit            string  `json:"unit"`
	GroundFloorArea float64 `json:"groundFloorArea"`
	NormalFloorArea float64 `json:"normalFloorArea"`
	PriceTL         float64 `json:"priceTL"`
	PriceUSD        float64 `json:"priceUSD"`
}

// Key returns the composite join key, "{block}-{unit}".
func (o Override) Key() string {
	return strings.TrimSpace(o.Block) + "-" + strings.TrimSpace(o.Unit)
}

// Dataset is the fully parsed and enriched in-memory model served by the
// inventory module. Snapshots are treated as immutable after construction.
type Dataset struct {
	UnitsByPhase map[string][]Unit
	Firms        []FirmInfo
	Overrides    map[string]Override
}

// NewDataset returns an empty dataset safe to serve before any load.
func NewDataset() *Dataset {
	return &Dataset{
		UnitsByPhase: make(map[string][]Unit),
		Overrides:    make(map[string]Override),
	}
}
