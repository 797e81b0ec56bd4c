package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sanayi_portal_backend/internal/inventory/domain"
	"sanayi_portal_backend/internal/units/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New()
	data := domain.NewDataset()
	data.UnitsByPhase["1"] = []domain.Unit{
		{Section: "Küçük Sanayi", Block: "A", UnitNumber: "1", NetArea: 338.4, Status: domain.StatusAvailable},
		{Section: "Küçük Sanayi", Block: "A", UnitNumber: "2", NetArea: 338.4, Status: domain.StatusSold},
	}
	repo.SeedFromDataset(data)

	h := New(repo, "https://example.test")

	r := gin.New()
	units := r.Group("/api/units")
	units.GET("", h.List)
	units.GET("/:id", h.GetByID)
	units.GET("/:id/qr", h.ShareQR)
	units.GET("/search/:term", h.Search)
	units.GET("/filter/:status", h.FilterByStatus)
	return r
}

func do(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListUnits(t *testing.T) {
	w := do(t, newTestRouter(t), "/api/units")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var units []repository.StoredUnit
	if err := json.Unmarshal(w.Body.Bytes(), &units); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
}

func TestGetByID(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "/api/units/1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var unit repository.StoredUnit
	if err := json.Unmarshal(w.Body.Bytes(), &unit); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if unit.UnitNumber != "1" {
		t.Fatalf("unexpected unit: %+v", unit)
	}

	if w := do(t, r, "/api/units/99"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown ID, got %d", w.Code)
	}
	if w := do(t, r, "/api/units/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric ID, got %d", w.Code)
	}
}

func TestSearch(t *testing.T) {
	w := do(t, newTestRouter(t), "/api/units/search/a")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var units []repository.StoredUnit
	if err := json.Unmarshal(w.Body.Bytes(), &units); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected both block A units, got %d", len(units))
	}
}

func TestFilterByStatus(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "/api/units/filter/sold")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var units []repository.StoredUnit
	if err := json.Unmarshal(w.Body.Bytes(), &units); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(units) != 1 || units[0].Status != domain.StatusSold {
		t.Fatalf("unexpected filter result: %+v", units)
	}

	for _, status := range []string{"reserved", "SOLD", "bogus"} {
		if w := do(t, r, "/api/units/filter/"+status); w.Code != http.StatusBadRequest {
			t.Fatalf("status %q: expected 400, got %d", status, w.Code)
		}
	}
}

func TestShareQR(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "/api/units/1/qr")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected PNG bytes in the body")
	}

	if w := do(t, r, "/api/units/99/qr"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown ID, got %d", w.Code)
	}
}
