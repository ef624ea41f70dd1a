package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la cotización.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// Quotation representa la cabecera de una cotización. ProjectID es único:
// un proyecto tiene a lo sumo una cotización (constraint en la tabla).
// Subtotal, Tax y Total son derivados y siempre se recalculan en el servidor.
type Quotation struct {
	ID         string
	ProjectID  string
	CustomerID string
	Date       time.Time
	ValidUntil time.Time
	Status     string // ver constantes QuotationStatus*
	Currency   string // heredada del proyecto
	Notes      string
	Terms      string
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuotationItem es la copia (snapshot) de un ítem de servicio al momento de
// incluirlo en la cotización. Cambios posteriores del ítem no la afectan
// salvo que la sincronización de totales la reconstruya.
type QuotationItem struct {
	ID            string
	QuotationID   string
	ServiceItemID string
	Name          string
	Description   string
	Quantity      decimal.Decimal
	Price         decimal.Decimal
}

// ValidQuotationStatus verifica que el estado pertenezca al conjunto permitido.
func ValidQuotationStatus(s string) bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return true
	}
	return false
}
