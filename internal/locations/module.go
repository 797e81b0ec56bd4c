// Package locations serves the static map location tables (ports, train
// stations, brand sales offices). The tables are configuration data loaded
// from a YAML file, not logic.
package locations

import (
	apphttp "sanayi_portal_backend/internal/http"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"
)

// Module wires the location table HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.LocationsConfig, log *logger.Logger) *Module {
	svc := NewService(cfg.GetLocationsFile(), log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "locations"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/locations")
	group.GET("", m.handler.ListAll)
	group.GET("/:group", m.handler.ListGroup)
}

var _ apphttp.Module = (*Module)(nil)
