// Package payments provides the payment plan bounded context: the fixed
// 30% down / 20-installment schedule shown in the purchase modal, plus its
// downloadable exports.
package payments

import (
	apphttp "sanayi_portal_backend/internal/http"
	"sanayi_portal_backend/internal/payments/handler"
	"sanayi_portal_backend/internal/pdf"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"
	"sanayi_portal_backend/platform/validator"
)

// Module is the payments bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the payments module. PDF export is wired only when a
// Gotenberg instance is configured.
func NewModule(cfg config.GotenbergConfig, val *validator.Validator, log *logger.Logger) *Module {
	var converter *pdf.GotenbergClient
	if cfg.IsGotenbergEnabled() {
		converter = pdf.NewGotenbergClient(cfg.GetGotenbergURL(), cfg.GetGotenbergUsername(), cfg.GetGotenbergPassword())
		log.Info("gotenberg PDF export enabled", "url", cfg.GetGotenbergURL())
	}

	return &Module{
		handler: handler.New(val, converter),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "payments"
}

// RegisterRoutes mounts payment plan routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/payments")
	group.GET("/plan", m.handler.Plan)
	group.GET("/plan/export", m.handler.Export)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
