// Package quote contiene la lógica pura de cotizaciones: cálculo de totales
// y reglas del flujo de estados. Sin dependencias de persistencia ni HTTP.
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
)

// TaxRate es la tasa de impuesto fija aplicada al subtotal (10%).
var TaxRate = decimal.RequireFromString("0.10")

// Totals agrupa los tres montos derivados de una cotización.
// Invariante: Subtotal = Σ(precio × cantidad), Tax = Subtotal × TaxRate,
// Total = Subtotal + Tax. Para una lista vacía los tres son cero.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals calcula subtotal, impuesto y total a partir de las líneas.
// Función pura: mismo input, mismo output; no muta los ítems.
func CalculateTotals(items []entity.QuotationItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(item.Quantity))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// SnapshotItems construye las líneas de cotización copiando los ítems de
// servicio actuales del proyecto (id, nombre, descripción, cantidad, precio).
// Los IDs de línea los asigna la capa de persistencia.
func SnapshotItems(quotationID string, items []*entity.ServiceItem) []entity.QuotationItem {
	out := make([]entity.QuotationItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.QuotationItem{
			QuotationID:   quotationID,
			ServiceItemID: it.ID,
			Name:          it.Name,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Price:         it.Price,
		})
	}
	return out
}
