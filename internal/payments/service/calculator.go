// Package service implements the payment plan derivation for the purchase
// modal: a down payment plus a fixed run of equal monthly installments.
package service

import (
	"fmt"
	"math"
	"time"

	"sanayi_portal_backend/internal/payments/transport"
)

// Fixed plan shape: 30% down, the remaining 70% over 20 monthly installments.
const (
	downPaymentRate  = 0.30
	installmentCount = 20
)

const dateLayout = "2006-01-02"

// roundLira rounds a float to the nearest whole currency unit.
func roundLira(v float64) float64 {
	return math.Round(v)
}

// addMonths advances t by the given number of calendar months, preserving
// the day-of-month where the target month has enough days and clamping to
// the month's last day otherwise (Jan 31 + 1 month -> Feb 29 in a leap year).
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

// BuildPlan derives the amortization schedule for the given total price and
// down-payment date: item 0 is the down payment, items 1..20 the monthly
// installments. The last installment absorbs the rounding residue so the
// item amounts always sum to the rounded price. A non-positive price yields
// a degenerate all-zero schedule rather than an error.
func BuildPlan(price float64, downPaymentDate time.Time) []transport.PaymentPlanItem {
	if price <= 0 {
		price = 0
	}

	downPayment := roundLira(price * downPaymentRate)
	installment := roundLira(price * (1 - downPaymentRate) / installmentCount)
	// Reconcile per-installment rounding against the total.
	lastInstallment := roundLira(price) - downPayment - installment*(installmentCount-1)

	items := make([]transport.PaymentPlanItem, 0, installmentCount+1)
	items = append(items, transport.PaymentPlanItem{
		InstallmentNo: 0,
		Date:          downPaymentDate.Format(dateLayout),
		Amount:        downPayment,
		Description:   "Peşinat",
	})

	for k := 1; k <= installmentCount; k++ {
		amount := installment
		if k == installmentCount {
			amount = lastInstallment
		}
		items = append(items, transport.PaymentPlanItem{
			InstallmentNo: k,
			Date:          addMonths(downPaymentDate, k).Format(dateLayout),
			Amount:        amount,
			Description:   fmt.Sprintf("%d. Taksit", k),
		})
	}

	return items
}

// PlanSummary wraps a schedule with its headline figures.
func PlanSummary(price float64, items []transport.PaymentPlanItem) transport.PaymentPlanResponse {
	var total float64
	for _, it := range items {
		total += it.Amount
	}

	resp := transport.PaymentPlanResponse{
		Price:            price,
		InstallmentCount: installmentCount,
		TotalAmount:      total,
		Items:            items,
	}
	if len(items) > 0 {
		resp.DownPayment = items[0].Amount
	}
	if len(items) > 1 {
		resp.InstallmentAmount = items[1].Amount
	}
	return resp
}
