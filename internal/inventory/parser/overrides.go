package parser

import (
	"math"

	"sanayi_portal_backend/internal/inventory/domain"
)

// Override CSV: fixed 14-column spreadsheet export. Only four columns are
// consumed; block and unit are taken as exported (trimmed by the decoder,
// not upper-cased) so the join key matches the inventory exports.
const (
	overrideMinFields  = 14
	overrideBlockField = 5
	overrideUnitField  = 6
	overrideGroundArea = 12
	overrideNormalArea = 13
)

// Placeholder pricing policy applied when the spreadsheet carries no price:
// TL per square meter and the TL/USD divisor used by the data generator.
const (
	placeholderTLPerSqm = 35000.0
	placeholderUSDPerTL = 35.0
)

// ParseOverrides consumes the area/price override CSV and returns records
// keyed by "{block}-{unit}". Rows with fewer than 14 fields are dropped;
// areas use comma-as-decimal normalization and default to 0 when unparsable.
func ParseOverrides(content string) map[string]domain.Override {
	lines := SplitLines(content)
	overrides := make(map[string]domain.Override)
	if len(lines) < 2 {
		return overrides
	}

	for _, line := range lines[1:] {
		fields := DecodeLine(line)
		if len(fields) < overrideMinFields {
			continue
		}

		o := domain.Override{
			Block:           fields[overrideBlockField],
			Unit:            fields[overrideUnitField],
			GroundFloorArea: parseFloat(fields[overrideGroundArea]),
			NormalFloorArea: parseFloat(fields[overrideNormalArea]),
		}
		o.PriceTL, o.PriceUSD = placeholderPrices(o.GroundFloorArea + o.NormalFloorArea)

		overrides[o.Key()] = o
	}

	return overrides
}

// placeholderPrices derives the bilingual price pair from total area.
// This mirrors the source data generator's stand-in policy and is not a
// pricing engine.
func placeholderPrices(totalArea float64) (priceTL, priceUSD float64) {
	if totalArea <= 0 {
		return 0, 0
	}
	priceTL = math.Round(totalArea * placeholderTLPerSqm)
	priceUSD = math.Round(priceTL / placeholderUSDPerTL)
	return priceTL, priceUSD
}
