package parser

import (
	"strconv"
	"strings"
	"unicode"

	"sanayi_portal_backend/internal/inventory/domain"
)

// phaseLayout describes where each consumed column sits for one phase's
// export schema. The five phase exports are near-identical; phase "2" carries
// an extra leading ID column and a trailing price column.
type phaseLayout struct {
	minFields int
	section   int
	block     int
	unit      int
	gross     int
	net       int
	status    int
}

var defaultLayout = phaseLayout{
	minFields: 6,
	section:   0,
	block:     1,
	unit:      2,
	gross:     3,
	net:       4,
	status:    5,
}

var phaseLayouts = map[string]phaseLayout{
	"1": defaultLayout,
	"2": {minFields: 7, section: 1, block: 2, unit: 3, gross: 4, net: 5, status: 6},
	"3": defaultLayout,
	"4": defaultLayout,
	"5": defaultLayout,
}

// Phases lists the recognized phase identifiers in display order.
func Phases() []string {
	return []string{"1", "2", "3", "4", "5"}
}

// KnownPhase reports whether the given phase identifier has a layout.
func KnownPhase(phase string) bool {
	_, ok := phaseLayouts[phase]
	return ok
}

// ParseUnits consumes a full unit-export CSV for the given phase and returns
// normalized units. The header line is skipped; rows with fewer fields than
// the phase layout requires are dropped; unparsable numerics become 0.
// An unknown phase yields no units.
func ParseUnits(content, phase string) []domain.Unit {
	layout, ok := phaseLayouts[phase]
	if !ok {
		return nil
	}

	lines := SplitLines(content)
	if len(lines) < 2 {
		return nil
	}

	units := make([]domain.Unit, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := DecodeLine(line)
		if len(fields) < layout.minFields {
			continue
		}

		units = append(units, domain.Unit{
			Section:    fields[layout.section],
			Block:      fields[layout.block],
			UnitNumber: fields[layout.unit],
			GrossArea:  parseFloat(fields[layout.gross]),
			NetArea:    parseFloat(fields[layout.net]),
			Status:     ClassifyStatus(fields[layout.status]),
		})
	}

	return units
}

// ClassifyStatus maps free-text status to a Status by case-insensitive
// substring match, Turkish casing aware. "satıldı" wins over co-occurring
// keywords; unmatched text defaults to available.
func ClassifyStatus(text string) domain.Status {
	lower := strings.ToLowerSpecial(unicode.TurkishCase, text)
	switch {
	case strings.Contains(lower, "satıldı"):
		return domain.StatusSold
	case strings.Contains(lower, "satışa kapalı"):
		return domain.StatusReserved
	case strings.Contains(lower, "satılık"):
		return domain.StatusAvailable
	default:
		return domain.StatusAvailable
	}
}

// parseFloat is the lenient numeric parse shared by the unit and override
// parsers: comma decimal separators are normalized, failures become 0.
func parseFloat(s string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
