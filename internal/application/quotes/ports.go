// Package quotes contiene los casos de uso de cotizaciones: creación con
// snapshot de líneas, flujo de estados y documento PDF imprimible.
package quotes

import (
	"context"

	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// QuotationTxRunner ejecuta un callback transaccional sobre el repositorio de
// cotizaciones (cabecera + líneas en un solo commit).
type QuotationTxRunner interface {
	RunQuotation(ctx context.Context, fn func(quotationRepo repository.QuotationRepository) error) error
}

// QuotationDocument agrupa todo lo que necesita el PDF de una cotización.
// Company puede ser nil si la configuración de la empresa nunca se guardó.
type QuotationDocument struct {
	Quotation *entity.Quotation
	Items     []entity.QuotationItem
	Customer  *entity.Customer
	Project   *entity.Project
	Company   *entity.CompanySettings
}

// PDFGenerator puerto del generador de documentos PDF.
type PDFGenerator interface {
	Generate(doc QuotationDocument) ([]byte, error)
}
