// Package loader fetches the CSV sources and assembles the enriched
// in-memory dataset. A failed source is logged and served as an empty
// dataset; nothing here is fatal to the process.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"sanayi_portal_backend/internal/inventory/domain"
	"sanayi_portal_backend/internal/inventory/parser"
	"sanayi_portal_backend/internal/inventory/service"
	"sanayi_portal_backend/platform/config"
	"sanayi_portal_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Loader assembles dataset snapshots from the configured CSV sources.
type Loader struct {
	cfg  config.DataConfig
	log  *logger.Logger
	http *http.Client
}

// New creates a loader. Sources may be local paths or http(s) URLs.
func New(cfg config.DataConfig, log *logger.Logger) *Loader {
	return &Loader{
		cfg: cfg,
		log: log,
		http: &http.Client{
			Timeout: cfg.GetFetchTimeout(),
		},
	}
}

// Load fetches all sources concurrently and returns the enriched dataset.
// The returned error is always nil today; the signature leaves room for a
// future hard-fail mode.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	data := domain.NewDataset()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, phase := range parser.Phases() {
		phase := phase
		g.Go(func() error {
			source := l.cfg.GetUnitCSVSource(phase)
			content, err := l.fetch(ctx, source)
			if err != nil {
				l.log.DatasetError(source, err)
				return nil
			}
			units := parser.ParseUnits(content, phase)
			l.log.DatasetLoaded(source, len(units))

			mu.Lock()
			data.UnitsByPhase[phase] = units
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		source := l.cfg.GetFirmCSVSource()
		content, err := l.fetch(ctx, source)
		if err != nil {
			l.log.DatasetError(source, err)
			return nil
		}
		firms := parser.ParseFirms(content)
		l.log.DatasetLoaded(source, len(firms))

		mu.Lock()
		data.Firms = firms
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		source := l.cfg.GetOverrideCSVSource()
		content, err := l.fetch(ctx, source)
		if err != nil {
			l.log.DatasetError(source, err)
			return nil
		}
		overrides := parser.ParseOverrides(content)
		l.log.DatasetLoaded(source, len(overrides))

		mu.Lock()
		data.Overrides = overrides
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for phase, units := range data.UnitsByPhase {
		data.UnitsByPhase[phase] = service.EnrichUnits(units, data.Overrides)
	}

	return data, nil
}

// fetch reads one source, local file or http(s) URL.
func (l *Loader) fetch(ctx context.Context, source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("source not configured")
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return "", err
		}
		resp, err := l.http.Do(req)
		if err != nil {
			return "", err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("upstream returned %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	body, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
