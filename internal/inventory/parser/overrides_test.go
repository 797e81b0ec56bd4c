package parser

import "testing"

const areasCSV = `SIRA,PAFTA,ADA,PARSEL,BÖLGE,BLOK,NO,MALİK,TAPU,HİSSE,ARSA,KAT,ZEMİN KAT,NORMAL KAT
1,F22,101,4,Küçük Sanayi,A,1,-,-,1/1,420,2,"210,5","127,9"
2,F22,102,7,Orta Ölçekli,C,5,-,-,1/1,860,2,"430,0",n/a
short,row
`

func TestParseOverrides(t *testing.T) {
	overrides := ParseOverrides(areasCSV)
	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides (short row dropped), got %d", len(overrides))
	}

	o, ok := overrides["A-1"]
	if !ok {
		t.Fatalf("expected key A-1, have %v", overrides)
	}
	if o.GroundFloorArea != 210.5 {
		t.Fatalf("comma decimal not normalized: got %v", o.GroundFloorArea)
	}
	if o.NormalFloorArea != 127.9 {
		t.Fatalf("expected normal floor area 127.9, got %v", o.NormalFloorArea)
	}
	if o.PriceTL <= 0 || o.PriceUSD <= 0 {
		t.Fatalf("expected placeholder prices to be derived, got %+v", o)
	}
}

func TestParseOverridesUnparsableAreaDefaultsToZero(t *testing.T) {
	overrides := ParseOverrides(areasCSV)
	o := overrides["C-5"]
	if o.NormalFloorArea != 0 {
		t.Fatalf("expected 0 for unparsable area, got %v", o.NormalFloorArea)
	}
	if o.GroundFloorArea != 430.0 {
		t.Fatalf("expected 430.0, got %v", o.GroundFloorArea)
	}
}
