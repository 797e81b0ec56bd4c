// Package inventory provides the floor-plan data bounded context: the CSV
// pipeline that parses the unit, firm and override exports into a normalized
// in-memory model and derives block summaries and firm lookups from it.
package inventory

import (
	"context"

	"sanayi_portal_backend/internal/events"
	apphttp "sanayi_portal_backend/internal/http"
	"sanayi_portal_backend/internal/inventory/handler"
	"sanayi_portal_backend/internal/inventory/loader"
	"sanayi_portal_backend/internal/inventory/service"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"
	"sanayi_portal_backend/platform/validator"
)

// Module is the inventory bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	loader  *loader.Loader
	bus     events.Bus
}

// NewModule creates and initializes the inventory module with all its
// dependencies. The dataset starts empty; call LoadData to populate it.
func NewModule(cfg config.DataConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(nil)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		loader:  loader.New(cfg, log),
		bus:     bus,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inventory"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// LoadData fetches and parses all CSV sources, swaps the served snapshot,
// and announces the new dataset on the event bus. Source failures degrade
// to empty datasets and are already logged by the loader.
func (m *Module) LoadData(ctx context.Context) error {
	data, err := m.loader.Load(ctx)
	if err != nil {
		return err
	}

	m.service.Swap(data)
	m.bus.Publish(ctx, events.DatasetLoaded{
		BaseEvent: events.NewBaseEvent(),
		Dataset:   data,
	})
	return nil
}

// RegisterRoutes mounts inventory routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/inventory")
	group.GET("/phases", m.handler.ListPhases)
	group.GET("/phases/:phase/units", m.handler.ListUnits)
	group.GET("/phases/:phase/blocks/:block/summary", m.handler.BlockSummary)
	group.GET("/firms", m.handler.FirmLookup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
