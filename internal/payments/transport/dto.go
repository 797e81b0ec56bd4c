// Package transport defines the payments module's HTTP DTOs.
package transport

// PaymentPlanRequest carries the plan query parameters. StartDate is the
// down-payment date in 2006-01-02 form; when omitted the plan starts today.
// A missing or non-positive price is accepted and produces the degenerate
// all-zero schedule.
type PaymentPlanRequest struct {
	Price     float64 `form:"price"`
	StartDate string  `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

// ExportRequest extends the plan request with an output format.
type ExportRequest struct {
	PaymentPlanRequest
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// PaymentPlanItem is one scheduled cash-flow line. Installment 0 is the
// down payment; 1..N are the monthly installments.
type PaymentPlanItem struct {
	InstallmentNo int     `json:"installmentNo"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
}

// PaymentPlanResponse is the full schedule with headline figures.
type PaymentPlanResponse struct {
	Price             float64           `json:"price"`
	DownPayment       float64           `json:"downPayment"`
	InstallmentCount  int               `json:"installmentCount"`
	InstallmentAmount float64           `json:"installmentAmount"`
	TotalAmount       float64           `json:"totalAmount"`
	Items             []PaymentPlanItem `json:"items"`
}
