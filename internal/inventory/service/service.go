// Package service implements the inventory derivations: override enrichment,
// firm lookup and per-block summaries. Everything here is a pure function
// over in-memory collections.
package service

import (
	"math"
	"strings"
	"sync"
	"unicode"

	"sanayi_portal_backend/internal/inventory/domain"
	"sanayi_portal_backend/platform/apperr"
)

// Service answers inventory queries against an immutable dataset snapshot.
// Snapshots are replaced wholesale on reload; reads never mutate.
type Service struct {
	mu   sync.RWMutex
	data *domain.Dataset
}

// New creates a service over the given snapshot. A nil dataset behaves as
// an empty one.
func New(data *domain.Dataset) *Service {
	if data == nil {
		data = domain.NewDataset()
	}
	return &Service{data: data}
}

// Swap replaces the snapshot. Callers hand over ownership of the dataset.
func (s *Service) Swap(data *domain.Dataset) {
	if data == nil {
		data = domain.NewDataset()
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

func (s *Service) snapshot() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Phases returns the phase identifiers present in the snapshot, in the
// canonical phase order.
func (s *Service) Phases() []string {
	return phasesOf(s.snapshot())
}

// UnitsForPhase returns the enriched units of one phase.
func (s *Service) UnitsForPhase(phase string) ([]domain.Unit, error) {
	units, ok := s.snapshot().UnitsByPhase[phase]
	if !ok {
		return nil, apperr.NotFound("unknown phase")
	}
	return units, nil
}

// Summary computes the block summary for one block within a phase.
func (s *Service) Summary(phase, block string) (domain.BlockSummary, error) {
	units, err := s.UnitsForPhase(phase)
	if err != nil {
		return domain.BlockSummary{}, err
	}
	return BlockSummary(units, block), nil
}

// FirmForUnit looks up the first firm record covering the given unit.
func (s *Service) FirmForUnit(block, unitNo, phase string) (domain.FirmInfo, error) {
	firm, ok := FirmForUnit(s.snapshot().Firms, block, unitNo, phase)
	if !ok {
		return domain.FirmInfo{}, apperr.NotFound("no firm record for unit")
	}
	return firm, nil
}

// EnrichUnits merges override records into units by the "{block}-{unit}"
// composite key. The join is a left-outer merge: units without a matching
// override keep their original fields untouched.
func EnrichUnits(units []domain.Unit, overrides map[string]domain.Override) []domain.Unit {
	if len(overrides) == 0 {
		return units
	}

	enriched := make([]domain.Unit, len(units))
	for i, u := range units {
		if o, ok := overrides[u.Key()]; ok {
			ground, normal := o.GroundFloorArea, o.NormalFloorArea
			priceTL, priceUSD := o.PriceTL, o.PriceUSD
			u.GroundFloorArea = &ground
			u.NormalFloorArea = &normal
			u.PriceTL = &priceTL
			u.PriceUSD = &priceUSD
		}
		enriched[i] = u
	}

	return enriched
}

// FirmForUnit scans the firm records for the first one matching the given
// block and unit number. Block comparison is case/whitespace normalized;
// the phase filter applies only when non-empty; unit membership is exact
// string match within the record's dash-split unit list.
//
// Overlapping claims are resolved first-match-wins; see design notes.
func FirmForUnit(firms []domain.FirmInfo, block, unitNo, phase string) (domain.FirmInfo, bool) {
	wantBlock := normalizeBlock(block)
	for _, f := range firms {
		if normalizeBlock(f.Block) != wantBlock {
			continue
		}
		if phase != "" && strings.TrimSpace(f.Etap) != strings.TrimSpace(phase) {
			continue
		}
		if f.CoversUnit(unitNo) {
			return f, true
		}
	}
	return domain.FirmInfo{}, false
}

// BlockSummary computes status counts, area totals and the occupancy rate
// for one block. Division by zero is guarded: an empty block yields zeroes.
func BlockSummary(units []domain.Unit, block string) domain.BlockSummary {
	summary := domain.BlockSummary{Block: block}
	wantBlock := normalizeBlock(block)

	for _, u := range units {
		if normalizeBlock(u.Block) != wantBlock {
			continue
		}
		summary.Total++
		summary.TotalArea += u.NetArea
		switch u.Status {
		case domain.StatusSold:
			summary.Sold++
		case domain.StatusReserved:
			summary.Reserved++
		default:
			summary.Available++
		}
	}

	if summary.Total > 0 {
		summary.AvgArea = summary.TotalArea / float64(summary.Total)
		summary.OccupancyRate = int(math.Round(float64(summary.Sold) / float64(summary.Total) * 100))
	}

	return summary
}

func normalizeBlock(block string) string {
	return strings.ToUpperSpecial(unicode.TurkishCase, strings.TrimSpace(block))
}

func phasesOf(data *domain.Dataset) []string {
	phases := make([]string, 0, len(data.UnitsByPhase))
	for _, p := range []string{"1", "2", "3", "4", "5"} {
		if _, ok := data.UnitsByPhase[p]; ok {
			phases = append(phases, p)
		}
	}
	return phases
}
