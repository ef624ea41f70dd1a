package quotes

import (
	"fmt"

	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// PDFUseCase arma el documento imprimible de una cotización: cabecera,
// datos del cliente y de la empresa emisora, líneas y totales.
type PDFUseCase struct {
	quotations repository.QuotationRepository
	projects   repository.ProjectRepository
	customers  repository.CustomerRepository
	settings   repository.SettingsRepository
	generator  PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	quotations repository.QuotationRepository,
	projects repository.ProjectRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		quotations: quotations,
		projects:   projects,
		customers:  customers,
		settings:   settings,
		generator:  generator,
	}
}

// Generate produce el PDF de la cotización y el nombre de archivo sugerido.
func (uc *PDFUseCase) Generate(id string) ([]byte, string, error) {
	q, err := uc.quotations.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.quotations.GetItems(q.ID)
	if err != nil {
		return nil, "", err
	}
	project, err := uc.projects.GetByID(q.ProjectID)
	if err != nil {
		return nil, "", err
	}
	customer, err := uc.customers.GetByID(q.CustomerID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.settings.Get()
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.Generate(QuotationDocument{
		Quotation: q,
		Items:     items,
		Customer:  customer,
		Project:   project,
		Company:   company,
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("cotizacion-%s.pdf", q.ID), nil
}
