// Package handler exposes the read-only unit lookup endpoints consumed by
// the presentation site.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"sanayi_portal_backend/internal/inventory/domain"
	"sanayi_portal_backend/internal/units/repository"
	"sanayi_portal_backend/platform/httpkit"
)

const msgInvalidID = "invalid unit ID"

// Handler handles HTTP requests for the unit query surface.
type Handler struct {
	repo        *repository.Repository
	siteBaseURL string
}

// New creates a new units handler.
func New(repo *repository.Repository, siteBaseURL string) *Handler {
	return &Handler{repo: repo, siteBaseURL: siteBaseURL}
}

// List returns all units.
// GET /api/units
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, h.repo.All())
}

// GetByID returns one unit by its numeric ID.
// GET /api/units/:id
func (h *Handler) GetByID(c *gin.Context) {
	unit, ok := h.lookupByID(c)
	if !ok {
		return
	}
	httpkit.OK(c, unit)
}

// Search returns units matching the term on unit number or block name.
// GET /api/units/search/:term
func (h *Handler) Search(c *gin.Context) {
	httpkit.OK(c, h.repo.Search(c.Param("term")))
}

// FilterByStatus returns units with the given status. Only "available" and
// "sold" are accepted; anything else is a 400.
// GET /api/units/filter/:status
func (h *Handler) FilterByStatus(c *gin.Context) {
	status := domain.Status(c.Param("status"))
	if status != domain.StatusAvailable && status != domain.StatusSold {
		httpkit.Error(c, http.StatusBadRequest, "status must be available or sold", nil)
		return
	}
	httpkit.OK(c, h.repo.FilterByStatus(status))
}

// ShareQR returns a PNG QR code pointing at the unit's public page, for
// print brochures.
// GET /api/units/:id/qr
func (h *Handler) ShareQR(c *gin.Context) {
	unit, ok := h.lookupByID(c)
	if !ok {
		return
	}

	shareURL := fmt.Sprintf("%s/unit/%d", h.siteBaseURL, unit.ID)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to generate QR code", nil)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) lookupByID(c *gin.Context) (repository.StoredUnit, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return repository.StoredUnit{}, false
	}

	unit, ok := h.repo.ByID(id)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "unit not found", nil)
		return repository.StoredUnit{}, false
	}
	return unit, true
}
