package usecase

import (
	"context"
	"io"

	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// CascadeTxRunner ejecuta un callback transaccional con los repositorios que
// participan en los borrados en cascada. O se aplican todos los pasos o ninguno.
type CascadeTxRunner interface {
	RunCascade(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		projectRepo repository.ProjectRepository,
		itemRepo repository.ServiceItemRepository,
		quotationRepo repository.QuotationRepository,
	) error) error
}

// QuotationTxRunner ejecuta un callback transaccional sobre el repositorio de
// cotizaciones (reemplazo de líneas + actualización de totales en un solo commit).
type QuotationTxRunner interface {
	RunQuotation(ctx context.Context, fn func(quotationRepo repository.QuotationRepository) error) error
}

// LogoStorage puerto del bucket donde se sube el logo de la empresa.
// Upload devuelve la URL pública del objeto.
type LogoStorage interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
