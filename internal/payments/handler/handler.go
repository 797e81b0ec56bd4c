// Package handler exposes the payment plan calculator over HTTP, including
// downloadable schedule exports.
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sanayi_portal_backend/internal/payments/service"
	"sanayi_portal_backend/internal/payments/transport"
	"sanayi_portal_backend/internal/pdf"
	"sanayi_portal_backend/platform/apperr"
	"sanayi_portal_backend/platform/httpkit"
	"sanayi_portal_backend/platform/validator"
)

const (
	dateLayout          = "2006-01-02"
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for payment plans.
type Handler struct {
	val       *validator.Validator
	converter *pdf.GotenbergClient // nil when PDF export is not configured
}

// New creates a new payments handler. converter may be nil.
func New(val *validator.Validator, converter *pdf.GotenbergClient) *Handler {
	return &Handler{val: val, converter: converter}
}

// Plan computes the amortization schedule for a price and start date.
// GET /api/v1/payments/plan?price=4200000&startDate=2026-09-01
func (h *Handler) Plan(c *gin.Context) {
	req, ok := h.bindPlanRequest(c)
	if !ok {
		return
	}

	start, ok := h.parseStartDate(c, req.StartDate)
	if !ok {
		return
	}

	items := service.BuildPlan(req.Price, start)
	httpkit.OK(c, service.PlanSummary(req.Price, items))
}

// Export streams the schedule as a downloadable file.
// GET /api/v1/payments/plan/export?price=...&startDate=...&format=csv|pdf
func (h *Handler) Export(c *gin.Context) {
	var req transport.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	start, ok := h.parseStartDate(c, req.StartDate)
	if !ok {
		return
	}

	plan := service.PlanSummary(req.Price, service.BuildPlan(req.Price, start))

	switch req.Format {
	case "pdf":
		h.exportPDF(c, plan)
	default:
		h.exportCSV(c, plan)
	}
}

func (h *Handler) exportCSV(c *gin.Context, plan transport.PaymentPlanResponse) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"installment_no", "date", "description", "amount"})
	for _, item := range plan.Items {
		_ = w.Write([]string{
			fmt.Sprintf("%d", item.InstallmentNo),
			item.Date,
			item.Description,
			fmt.Sprintf("%.0f", item.Amount),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="odeme-plani.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) exportPDF(c *gin.Context, plan transport.PaymentPlanResponse) {
	if h.converter == nil {
		httpkit.HandleError(c, apperr.Unavailable("PDF export is not configured"))
		return
	}

	html, err := pdf.RenderScheduleHTML(plan)
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "failed to render schedule", err))
		return
	}

	doc, err := h.converter.ConvertHTML(c.Request.Context(), html, pdf.ScheduleOpts())
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindUnavailable, "PDF renderer unavailable", err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="odeme-plani.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *Handler) bindPlanRequest(c *gin.Context) (transport.PaymentPlanRequest, bool) {
	var req transport.PaymentPlanRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return req, false
	}
	return req, true
}

func (h *Handler) parseStartDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	start, err := time.Parse(dateLayout, raw)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid startDate", nil)
		return time.Time{}, false
	}
	return start, true
}
