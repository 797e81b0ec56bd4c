// Package handler exposes the inventory datasets over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanayi_portal_backend/internal/inventory/service"
	"sanayi_portal_backend/internal/inventory/transport"
	"sanayi_portal_backend/platform/httpkit"
	"sanayi_portal_backend/platform/validator"
)

// Handler handles HTTP requests for the parsed inventory datasets.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new inventory handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListPhases returns the phase identifiers with loaded inventory.
// GET /api/v1/inventory/phases
func (h *Handler) ListPhases(c *gin.Context) {
	httpkit.OK(c, transport.PhaseListResponse{Phases: h.svc.Phases()})
}

// ListUnits returns the enriched units of one phase.
// GET /api/v1/inventory/phases/:phase/units
func (h *Handler) ListUnits(c *gin.Context) {
	phase := c.Param("phase")

	units, err := h.svc.UnitsForPhase(phase)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.UnitListResponse{
		Phase: phase,
		Items: units,
		Total: len(units),
	})
}

// BlockSummary returns the derived per-block counts and occupancy rate.
// GET /api/v1/inventory/phases/:phase/blocks/:block/summary
func (h *Handler) BlockSummary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Param("phase"), c.Param("block"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, summary)
}

// FirmLookup returns the first firm record covering the requested unit.
// GET /api/v1/inventory/firms?block=A&unit=4&phase=1
func (h *Handler) FirmLookup(c *gin.Context) {
	var req transport.FirmLookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	firm, err := h.svc.FirmForUnit(req.Block, req.Unit, req.Phase)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, firm)
}
