// Package domain holds the inventory model shared by the parser, the
// enrichment service and the HTTP transport.
package domain

import (
	"strconv"
	"strings"
)

// Status is the sales state of a unit.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusReserved  Status = "reserved"
)

// Unit is one sellable/occupiable space in the development.
// (Block, UnitNumber) is unique within one phase; different phases reuse
// block letters, so lookups must be scoped by phase.
type Unit struct {
	Section    string  `json:"section"`
	Block      string  `json:"block"`
	UnitNumber string  `json:"unitNumber"`
	GrossArea  float64 `json:"grossArea"`
	NetArea    float64 `json:"netArea"`
	Status     Status  `json:"status"`

	// Enrichment fields, populated only when a matching override exists.
	GroundFloorArea *float64 `json:"groundFloorArea,omitempty"`
	NormalFloorArea *float64 `json:"normalFloorArea,omitempty"`
	PriceTL         *float64 `json:"priceTL,omitempty"`
	PriceUSD        *float64 `json:"priceUSD,omitempty"`
}

// Key returns the composite join key shared with the override dataset.
func (u Unit) Key() string {
	return strings.TrimSpace(u.Block) + "-" + strings.TrimSpace(u.UnitNumber)
}

// OrdinalNumber recovers an ordering integer from the unit label by keeping
// only its digits ("B-12a" -> 12). Returns 0 when no digits are present.
func (u Unit) OrdinalNumber() int {
	var b strings.Builder
	for _, r := range u.UnitNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, _ := strconv.Atoi(b.String())
	return n
}

// DisplayArea is the area shown on floor-plan labels: the override floor
// breakdown takes precedence over the inventory net area when present.
func (u Unit) DisplayArea() float64 {
	if u.GroundFloorArea != nil || u.NormalFloorArea != nil {
		var total float64
		if u.GroundFloorArea != nil {
			total += *u.GroundFloorArea
		}
		if u.NormalFloorArea != nil {
			total += *u.NormalFloorArea
		}
		return total
	}
	return u.NetArea
}

// BlockSummary is derived on demand from a unit collection filtered by block.
type BlockSummary struct {
	Block         string  `json:"block"`
	Total         int     `json:"total"`
	Sold          int     `json:"sold"`
	Available     int     `json:"available"`
	Reserved      int     `json:"reserved"`
	TotalArea     float64 `json:"totalArea"`
	AvgArea       float64 `json:"avgArea"`
	OccupancyRate int     `json:"occupancyRate"`
}
