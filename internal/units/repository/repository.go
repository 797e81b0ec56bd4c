// Package repository implements the in-memory unit store behind the
// read-only query endpoints. The store is seeded from a JSON file at boot
// and reseeded whenever a fresh inventory dataset is loaded.
package repository

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"sanayi_portal_backend/internal/inventory/domain"
)

// StoredUnit is a unit as served by the query endpoints: the inventory
// shape plus a stable lookup ID and its phase.
type StoredUnit struct {
	ID    int    `json:"id"`
	Phase string `json:"phase"`
	domain.Unit
}

// Repository is a process-memory unit store. All methods are safe for
// concurrent use.
type Repository struct {
	mu    sync.RWMutex
	units []StoredUnit
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{}
}

// SeedFromFile replaces the store with the units in the given JSON file.
func (r *Repository) SeedFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var units []StoredUnit
	if err := json.Unmarshal(raw, &units); err != nil {
		return err
	}

	r.mu.Lock()
	r.units = units
	r.mu.Unlock()
	return nil
}

// SeedFromDataset replaces the store with the dataset's enriched units.
// IDs are deterministic ordinals over (phase, block, unit-number) order so
// share links stay stable across reloads of the same data.
func (r *Repository) SeedFromDataset(data *domain.Dataset) {
	var units []StoredUnit
	for _, phase := range []string{"1", "2", "3", "4", "5"} {
		phaseUnits := append([]domain.Unit(nil), data.UnitsByPhase[phase]...)
		sort.SliceStable(phaseUnits, func(i, j int) bool {
			if phaseUnits[i].Block != phaseUnits[j].Block {
				return phaseUnits[i].Block < phaseUnits[j].Block
			}
			return phaseUnits[i].OrdinalNumber() < phaseUnits[j].OrdinalNumber()
		})
		for _, u := range phaseUnits {
			units = append(units, StoredUnit{
				ID:    len(units) + 1,
				Phase: phase,
				Unit:  u,
			})
		}
	}

	r.mu.Lock()
	r.units = units
	r.mu.Unlock()
}

// All returns every stored unit.
func (r *Repository) All() []StoredUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]StoredUnit(nil), r.units...)
}

// ByID returns the unit with the given ID.
func (r *Repository) ByID(id int) (StoredUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.units {
		if u.ID == id {
			return u, true
		}
	}
	return StoredUnit{}, false
}

// Search returns units whose unit number or block name contains the term,
// case-insensitively.
func (r *Repository) Search(term string) []StoredUnit {
	needle := strings.ToLower(strings.TrimSpace(term))

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StoredUnit, 0)
	for _, u := range r.units {
		if strings.Contains(strings.ToLower(u.UnitNumber), needle) ||
			strings.Contains(strings.ToLower(u.Block), needle) {
			out = append(out, u)
		}
	}
	return out
}

// FilterByStatus returns units with the given status.
func (r *Repository) FilterByStatus(status domain.Status) []StoredUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StoredUnit, 0)
	for _, u := range r.units {
		if u.Status == status {
			out = append(out, u)
		}
	}
	return out
}
