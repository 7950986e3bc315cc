// Package dto provides Data Transfer Objects for API requests/responses.
//
// Monetary fields always serialize as strings with exactly two
// fractional digits; dates as YYYY-MM-DD.
package dto

import (
	"time"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// parseMoney parses a decimal string from the wire. Empty means zero.
func parseMoney(field, value string) (types.Money, error) {
	if value == "" {
		return types.Zero(), nil
	}
	m, err := types.NewMoneyFromString(value)
	if err != nil {
		return types.Zero(), apperror.NewValidation("invalid monetary value").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return m, nil
}

// parseID parses a UUID request field.
func parseID(field, value string) (id.ID, error) {
	parsed, err := id.Parse(value)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid identifier").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return parsed, nil
}

// parseOptionalID parses a UUID request field that may be absent.
func parseOptionalID(field string, value *string) (*id.ID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Base DTOs ---

// BaseResponse contains common response fields.
type BaseResponse struct {
	ID           string `json:"id"`
	DeletionMark bool   `json:"deletionMark"`
	Version      int    `json:"version"`
}

// CatalogResponse contains catalog fields common to every catalog entity.
type CatalogResponse struct {
	BaseResponse
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// FromCatalog creates CatalogResponse from entity.Catalog.
func FromCatalog(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		BaseResponse: BaseResponse{
			ID:           c.ID.String(),
			DeletionMark: c.DeletionMark,
			Version:      c.Version,
		},
		Code:     c.Code,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}

// DocumentResponse contains audit fields common to every document.
type DocumentResponse struct {
	BaseResponse
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// FromDocument creates DocumentResponse from entity.BaseDocument.
func FromDocument(d entity.BaseDocument) DocumentResponse {
	return DocumentResponse{
		BaseResponse: BaseResponse{
			ID:           d.ID.String(),
			DeletionMark: d.DeletionMark,
			Version:      d.Version,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		CreatedBy: d.CreatedBy,
		UpdatedBy: d.UpdatedBy,
	}
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}

// --- Activation ---

type SetActiveRequest struct {
	Active bool `json:"active"`
}
