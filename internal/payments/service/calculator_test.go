package service

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestBuildPlanShape(t *testing.T) {
	items := BuildPlan(1000000, mustDate(t, "2026-09-01"))

	if len(items) != 21 {
		t.Fatalf("expected 21 items (down payment + 20 installments), got %d", len(items))
	}
	if items[0].InstallmentNo != 0 {
		t.Fatalf("first item must be the down payment, got %+v", items[0])
	}
	if items[0].Amount != 300000 {
		t.Fatalf("down payment must be 30%%: expected 300000, got %v", items[0].Amount)
	}
	if items[0].Date != "2026-09-01" {
		t.Fatalf("down payment dated at start date, got %s", items[0].Date)
	}
	if items[1].Amount != 35000 {
		t.Fatalf("installment must be 70%%/20: expected 35000, got %v", items[1].Amount)
	}
	if items[1].Date != "2026-10-01" {
		t.Fatalf("installment 1 one month after start, got %s", items[1].Date)
	}
	if items[20].InstallmentNo != 20 || items[20].Date != "2028-05-01" {
		t.Fatalf("unexpected final installment: %+v", items[20])
	}
}

func TestBuildPlanTotalInvariant(t *testing.T) {
	// Prices chosen so per-installment rounding leaves a residue.
	for _, price := range []float64{999999, 1234567, 3333333, 29400000, 41.0} {
		items := BuildPlan(price, mustDate(t, "2026-01-15"))

		var sum float64
		for _, it := range items {
			sum += it.Amount
		}

		want := float64(int64(price + 0.5)) // rounded price
		if sum != want {
			t.Fatalf("price %v: amounts sum to %v, expected %v", price, sum, want)
		}
	}
}

func TestBuildPlanCalendarClamping(t *testing.T) {
	// 2024 is a leap year: Jan 31 + 1 month clamps to Feb 29.
	items := BuildPlan(1000000, mustDate(t, "2024-01-31"))

	if items[1].Date != "2024-02-29" {
		t.Fatalf("expected clamp to 2024-02-29, got %s", items[1].Date)
	}
	if items[2].Date != "2024-03-31" {
		t.Fatalf("day-of-month must be preserved when it fits, got %s", items[2].Date)
	}
	if items[3].Date != "2024-04-30" {
		t.Fatalf("expected clamp to 2024-04-30, got %s", items[3].Date)
	}

	// Non-leap year clamps to Feb 28.
	items = BuildPlan(1000000, mustDate(t, "2025-01-31"))
	if items[1].Date != "2025-02-28" {
		t.Fatalf("expected clamp to 2025-02-28, got %s", items[1].Date)
	}
}

func TestBuildPlanDegeneratePrice(t *testing.T) {
	for _, price := range []float64{0, -500} {
		items := BuildPlan(price, mustDate(t, "2026-09-01"))
		if len(items) != 21 {
			t.Fatalf("degenerate price still yields a full schedule, got %d items", len(items))
		}
		for _, it := range items {
			if it.Amount != 0 {
				t.Fatalf("expected zero amounts for price %v, got %+v", price, it)
			}
		}
	}
}

func TestPlanSummary(t *testing.T) {
	items := BuildPlan(1000000, mustDate(t, "2026-09-01"))
	resp := PlanSummary(1000000, items)

	if resp.DownPayment != 300000 || resp.InstallmentAmount != 35000 {
		t.Fatalf("unexpected headline figures: %+v", resp)
	}
	if resp.InstallmentCount != 20 {
		t.Fatalf("expected 20 installments, got %d", resp.InstallmentCount)
	}
	if resp.TotalAmount != 1000000 {
		t.Fatalf("expected total 1000000, got %v", resp.TotalAmount)
	}
}
