package parser

import "testing"

const firmsCSV = `SIRA_NO,ETAP,BLOK,NO,FIRMA,KIRACI/MALIK,IS_KOLU
1,1,a,3-4-6,Demir Makina,MALİK,Makina imalatı
2,1,B,2,Yıldız Kalıp,KİRACI,Plastik enjeksiyon
toplam,,,,,,
,,,,,,
`

func TestParseFirms(t *testing.T) {
	firms := ParseFirms(firmsCSV)
	if len(firms) != 2 {
		t.Fatalf("expected 2 firms (footer rows dropped), got %d", len(firms))
	}

	first := firms[0]
	if first.SiraNo != 1 || first.Etap != "1" {
		t.Fatalf("unexpected first firm: %+v", first)
	}
	if first.Block != "A" {
		t.Fatalf("block should be upper-cased on ingestion, got %q", first.Block)
	}
	if first.UnitNo != "3-4-6" {
		t.Fatalf("unit list should be kept verbatim, got %q", first.UnitNo)
	}
}

func TestParseFirmsRejectsShortRows(t *testing.T) {
	content := "SIRA_NO,ETAP,BLOK,NO,FIRMA,KIRACI/MALIK,IS_KOLU\n3,1,C\n"
	if firms := ParseFirms(content); len(firms) != 0 {
		t.Fatalf("expected short row rejected, got %d firms", len(firms))
	}
}

func TestFirmCoversUnitExactMembership(t *testing.T) {
	firms := ParseFirms(firmsCSV)
	firm := firms[0] // covers "3-4-6"

	if !firm.CoversUnit("4") {
		t.Fatalf("expected firm to cover unit 4")
	}
	if firm.CoversUnit("5") {
		t.Fatalf("firm covering 3-4-6 must not cover unit 5")
	}
}
