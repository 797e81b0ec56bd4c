package parser

import (
	"testing"

	"sanayi_portal_backend/internal/inventory/domain"
)

const etap1CSV = `BÖLÜM,BLOK,NO,BRÜT,NET,DURUM
Küçük Sanayi,A,1,412.5,338.4,SATILDI
Küçük Sanayi,A,2,412.5,338.4,SATILIK
Küçük Sanayi,B,1,618.0,505.2,SATIŞA KAPALI
`

func TestParseUnitsDefaultLayout(t *testing.T) {
	units := ParseUnits(etap1CSV, "1")
	if len(units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(units))
	}

	first := units[0]
	if first.Section != "Küçük Sanayi" || first.Block != "A" || first.UnitNumber != "1" {
		t.Fatalf("unexpected first unit: %+v", first)
	}
	if first.GrossArea != 412.5 || first.NetArea != 338.4 {
		t.Fatalf("unexpected areas: %+v", first)
	}
	if first.Status != domain.StatusSold {
		t.Fatalf("expected sold, got %s", first.Status)
	}
	if units[1].Status != domain.StatusAvailable {
		t.Fatalf("expected available, got %s", units[1].Status)
	}
	if units[2].Status != domain.StatusReserved {
		t.Fatalf("expected reserved, got %s", units[2].Status)
	}
}

func TestParseUnitsPhase2Layout(t *testing.T) {
	content := "ID,BÖLÜM,BLOK,NO,BRÜT,NET,DURUM,FİYAT\n" +
		"101,Orta Ölçekli,C,5,840.0,702.6,SATILIK,29400000\n"

	units := ParseUnits(content, "2")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	u := units[0]
	if u.Section != "Orta Ölçekli" || u.Block != "C" || u.UnitNumber != "5" {
		t.Fatalf("phase 2 columns misread: %+v", u)
	}
	if u.GrossArea != 840.0 || u.NetArea != 702.6 {
		t.Fatalf("unexpected areas: %+v", u)
	}
}

func TestParseUnitsDropsShortRows(t *testing.T) {
	content := etap1CSV + "only,three,fields\n"

	units := ParseUnits(content, "1")
	if len(units) != 3 {
		t.Fatalf("short row should be dropped: expected 3 units, got %d", len(units))
	}
}

func TestParseUnitsUnparsableNumericsDefaultToZero(t *testing.T) {
	content := "BÖLÜM,BLOK,NO,BRÜT,NET,DURUM\nKüçük Sanayi,A,1,n/a,-,SATILIK\n"

	units := ParseUnits(content, "1")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].GrossArea != 0 || units[0].NetArea != 0 {
		t.Fatalf("expected zero areas, got %+v", units[0])
	}
}

func TestParseUnitsUnknownPhase(t *testing.T) {
	if units := ParseUnits(etap1CSV, "9"); units != nil {
		t.Fatalf("expected nil for unknown phase, got %v", units)
	}
}

func TestClassifyStatusTotality(t *testing.T) {
	cases := []struct {
		text string
		want domain.Status
	}{
		{"SATILDI", domain.StatusSold},
		{"satıldı", domain.StatusSold},
		{"Satılık iken satıldı", domain.StatusSold}, // sold wins over co-occurring keywords
		{"SATIŞA KAPALI", domain.StatusReserved},
		{"satışa kapalı", domain.StatusReserved},
		{"SATILIK", domain.StatusAvailable},
		{"", domain.StatusAvailable},
		{"bilinmiyor", domain.StatusAvailable},
	}

	for _, tc := range cases {
		if got := ClassifyStatus(tc.text); got != tc.want {
			t.Fatalf("ClassifyStatus(%q): expected %s, got %s", tc.text, tc.want, got)
		}
	}
}
