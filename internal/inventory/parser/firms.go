package parser

import (
	"strconv"
	"strings"
	"unicode"

	"sanayi_portal_backend/internal/inventory/domain"
)

// Firm CSV columns: SIRA_NO, ETAP, BLOK, NO, FIRMA, KIRACI/MALIK, IS_KOLU.
const firmMinFields = 7

// ParseFirms consumes the firm/tenant CSV. A row is accepted only when it
// has at least 7 fields and the first field parses as an integer; this
// guards against stray blank and footer rows in the export. Block letters
// are upper-cased on ingestion.
func ParseFirms(content string) []domain.FirmInfo {
	lines := SplitLines(content)
	if len(lines) < 2 {
		return nil
	}

	firms := make([]domain.FirmInfo, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := DecodeLine(line)
		if len(fields) < firmMinFields {
			continue
		}

		siraNo, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}

		firms = append(firms, domain.FirmInfo{
			SiraNo: siraNo,
			Etap:   fields[1],
			Block:  strings.ToUpperSpecial(unicode.TurkishCase, fields[2]),
			UnitNo: fields[3],
			Firma:  fields[4],
			Kiraci: fields[5],
			IsKolu: fields[6],
		})
	}

	return firms
}
