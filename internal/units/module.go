// Package units provides the minimal query backend: an in-memory store over
// a static unit list with read-only lookup endpoints.
package units

import (
	"context"

	"sanayi_portal_backend/internal/events"
	apphttp "sanayi_portal_backend/internal/http"
	"sanayi_portal_backend/internal/units/handler"
	"sanayi_portal_backend/internal/units/repository"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"
)

// Module is the units query bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repository
	log     *logger.Logger
}

// NewModule creates the units module and seeds the store from the JSON seed
// file. A missing or unreadable seed file degrades to an empty store.
func NewModule(cfg config.DataConfig, site config.PublicSiteConfig, log *logger.Logger) *Module {
	repo := repository.New()

	seedFile := cfg.GetUnitSeedFile()
	if err := repo.SeedFromFile(seedFile); err != nil {
		log.DatasetError(seedFile, err)
	} else {
		log.DatasetLoaded(seedFile, len(repo.All()))
	}

	return &Module{
		handler: handler.New(repo, site.GetSiteBaseURL()),
		repo:    repo,
		log:     log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "units"
}

// Repository returns the store for direct access if needed.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts the query endpoints on the bare /api group, matching
// the paths the presentation site fetches.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/units")
	group.GET("", m.handler.List)
	group.GET("/:id", m.handler.GetByID)
	group.GET("/:id/qr", m.handler.ShareQR)
	group.GET("/search/:term", m.handler.Search)
	group.GET("/filter/:status", m.handler.FilterByStatus)
}

// RegisterHandlers subscribes to dataset events so the query surface serves
// the freshest parsed inventory.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.DatasetLoaded{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.DatasetLoaded:
		m.repo.SeedFromDataset(e.Dataset)
		m.log.Info("unit store reseeded from dataset", "units", len(m.repo.All()))
		return nil
	default:
		return nil
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
