package parser

import "testing"

func TestDecodeLineQuotedComma(t *testing.T) {
	fields := DecodeLine(`A,"B, C",D`)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields[0] != "A" || fields[1] != "B, C" || fields[2] != "D" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestDecodeLineTrailingFieldAlwaysEmitted(t *testing.T) {
	fields := DecodeLine("A,B,")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields[2] != "" {
		t.Fatalf("expected empty trailing field, got %q", fields[2])
	}

	fields = DecodeLine("single")
	if len(fields) != 1 || fields[0] != "single" {
		t.Fatalf("expected single field, got %v", fields)
	}
}

func TestDecodeLineTrimsFields(t *testing.T) {
	fields := DecodeLine("  A , B  ,  C")
	for i, want := range []string{"A", "B", "C"} {
		if fields[i] != want {
			t.Fatalf("field %d: expected %q, got %q", i, want, fields[i])
		}
	}
}

func TestSplitLinesFiltersEmpties(t *testing.T) {
	lines := SplitLines("a,b\r\n\r\nc,d\n\n  \ne,f")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
}
