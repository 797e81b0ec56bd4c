package repository

import (
	"os"
	"path/filepath"
	"testing"

	"sanayi_portal_backend/internal/inventory/domain"
)

func seeded(t *testing.T) *Repository {
	t.Helper()
	repo := New()

	data := domain.NewDataset()
	data.UnitsByPhase["1"] = []domain.Unit{
		{Section: "Küçük Sanayi", Block: "B", UnitNumber: "2", Status: domain.StatusSold},
		{Section: "Küçük Sanayi", Block: "A", UnitNumber: "10", Status: domain.StatusAvailable},
		{Section: "Küçük Sanayi", Block: "A", UnitNumber: "2", Status: domain.StatusAvailable},
	}
	data.UnitsByPhase["2"] = []domain.Unit{
		{Section: "Orta Ölçekli", Block: "C", UnitNumber: "5", Status: domain.StatusReserved},
	}
	repo.SeedFromDataset(data)
	return repo
}

func TestSeedFromDatasetDeterministicIDs(t *testing.T) {
	repo := seeded(t)

	all := repo.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 units, got %d", len(all))
	}

	// Ordered by (phase, block, numeric unit number): A-2, A-10, B-2, C-5.
	if all[0].Block != "A" || all[0].UnitNumber != "2" || all[0].ID != 1 {
		t.Fatalf("unexpected first unit: %+v", all[0])
	}
	if all[1].UnitNumber != "10" {
		t.Fatalf("unit ordering must be numeric, not lexicographic: %+v", all[1])
	}
	if all[3].Phase != "2" || all[3].ID != 4 {
		t.Fatalf("unexpected last unit: %+v", all[3])
	}
}

func TestByID(t *testing.T) {
	repo := seeded(t)

	unit, ok := repo.ByID(3)
	if !ok {
		t.Fatalf("expected unit 3 to exist")
	}
	if unit.Block != "B" {
		t.Fatalf("unexpected unit: %+v", unit)
	}

	if _, ok := repo.ByID(99); ok {
		t.Fatalf("expected miss for unknown ID")
	}
}

func TestSearchMatchesUnitNumberAndBlock(t *testing.T) {
	repo := seeded(t)

	if got := repo.Search("10"); len(got) != 1 || got[0].UnitNumber != "10" {
		t.Fatalf("expected match on unit number, got %v", got)
	}
	if got := repo.Search("c"); len(got) != 1 || got[0].Block != "C" {
		t.Fatalf("search must be case-insensitive on block, got %v", got)
	}
	if got := repo.Search("zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterByStatus(t *testing.T) {
	repo := seeded(t)

	if got := repo.FilterByStatus(domain.StatusAvailable); len(got) != 2 {
		t.Fatalf("expected 2 available units, got %d", len(got))
	}
	if got := repo.FilterByStatus(domain.StatusSold); len(got) != 1 {
		t.Fatalf("expected 1 sold unit, got %d", len(got))
	}
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	payload := `[{"id":1,"phase":"1","section":"Küçük Sanayi","block":"A","unitNumber":"1","grossArea":412.5,"netArea":338.4,"status":"sold"}]`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	repo := New()
	if err := repo.SeedFromFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unit, ok := repo.ByID(1)
	if !ok || unit.Status != domain.StatusSold {
		t.Fatalf("unexpected seeded unit: %+v ok=%v", unit, ok)
	}

	if err := repo.SeedFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}
