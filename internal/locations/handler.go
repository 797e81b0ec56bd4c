package locations

import (
	"github.com/gin-gonic/gin"

	"sanayi_portal_backend/platform/httpkit"
)

// Handler exposes the location table endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAll handles GET /api/v1/locations
func (h *Handler) ListAll(c *gin.Context) {
	httpkit.OK(c, h.svc.All())
}

// ListGroup handles GET /api/v1/locations/:group
func (h *Handler) ListGroup(c *gin.Context) {
	group, err := h.svc.Group(c.Param("group"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, group)
}
