package domain

import "strings"

// FirmInfo is an occupancy/ownership claim over one or more units.
type FirmInfo struct {
	SiraNo int    `json:"siraNo"`
	Etap   string `json:"etap"`
	Block  string `json:"block"`
	UnitNo string `json:"unitNo"` // dash-separated unit list, e.g. "3-4-6"
	Firma  string `json:"firma"`
	Kiraci string `json:"kiraci"` // owner ("MALİK") or tenant ("KİRACI") marker
	IsKolu string `json:"isKolu"`
}

// CoversUnit reports whether this record claims the given unit number.
// Membership is exact string match against the dash-split list: a record
// covering "3-4-6" does not cover "5". No range expansion.
func (f FirmInfo) CoversUnit(unitNo string) bool {
	target := strings.TrimSpace(unitNo)
	for _, part := range strings.Split(f.UnitNo, "-") {
		if strings.TrimSpace(part) == target {
			return true
		}
	}
	return false
}
