// Package transport defines the inventory module's HTTP DTOs.
package transport

import "sanayi_portal_backend/internal/inventory/domain"

// FirmLookupRequest carries the query parameters of the firm lookup.
type FirmLookupRequest struct {
	Block string `form:"block" validate:"required,min=1,max=10"`
	Unit  string `form:"unit" validate:"required,min=1,max=10"`
	Phase string `form:"phase" validate:"omitempty,max=10"`
}

// PhaseListResponse lists the phase identifiers with loaded inventory.
type PhaseListResponse struct {
	Phases []string `json:"phases"`
}

// UnitListResponse wraps a phase's enriched unit list.
type UnitListResponse struct {
	Phase string        `json:"phase"`
	Items []domain.Unit `json:"items"`
	Total int           `json:"total"`
}
