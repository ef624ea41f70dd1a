package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuotationRequest payload para crear una cotización. Las líneas se
// copian en el servidor desde los ítems de servicio del proyecto: si
// ServiceItemIDs viene vacío se incluyen todos los ítems del proyecto.
type CreateQuotationRequest struct {
	ProjectID      string   `json:"project_id"`
	Date           string   `json:"date"`        // YYYY-MM-DD
	ValidUntil     string   `json:"valid_until"` // YYYY-MM-DD
	Notes          string   `json:"notes"`
	Terms          string   `json:"terms"`
	ServiceItemIDs []string `json:"service_item_ids"`
}

// UpdateQuotationRequest payload para actualizar la cabecera de una
// cotización. Si RefreshItems es true, las líneas se reconstruyen desde los
// ítems de servicio actuales del proyecto y los totales se recalculan.
type UpdateQuotationRequest struct {
	Date         string `json:"date"`
	ValidUntil   string `json:"valid_until"`
	Notes        string `json:"notes"`
	Terms        string `json:"terms"`
	RefreshItems bool   `json:"refresh_items"`
}

// UpdateQuotationStatusRequest payload para cambiar el estado de una cotización.
type UpdateQuotationStatusRequest struct {
	Status string `json:"status"` // draft, sent, accepted, rejected
}

// QuotationItemResponse línea de cotización en la API.
type QuotationItemResponse struct {
	ID            string          `json:"id"`
	ServiceItemID string          `json:"service_item_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// QuotationResponse representación completa de una cotización en la API.
type QuotationResponse struct {
	ID         string                  `json:"id"`
	ProjectID  string                  `json:"project_id"`
	CustomerID string                  `json:"customer_id"`
	Date       time.Time               `json:"date"`
	ValidUntil time.Time               `json:"valid_until"`
	Status     string                  `json:"status"`
	Currency   string                  `json:"currency"`
	Notes      string                  `json:"notes"`
	Terms      string                  `json:"terms"`
	Items      []QuotationItemResponse `json:"items"`
	Subtotal   decimal.Decimal         `json:"subtotal"`
	Tax        decimal.Decimal         `json:"tax"`
	Total      decimal.Decimal         `json:"total"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}
