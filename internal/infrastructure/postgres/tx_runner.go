package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CascadeTxRunner and quotes.QuotationTxRunner.
var _ usecase.CascadeTxRunner = (*TxRunner)(nil)
var _ quotes.QuotationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCascade inicia una transacción con los repos que participan en los
// borrados en cascada (cliente o proyecto) y hace Commit o Rollback.
func (r *TxRunner) RunCascade(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	projectRepo repository.ProjectRepository,
	itemRepo repository.ServiceItemRepository,
	quotationRepo repository.QuotationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerRepo := NewCustomerRepository(tx)
	projectRepo := NewProjectRepository(tx)
	itemRepo := NewServiceItemRepository(tx)
	quotationRepo := NewQuotationRepository(tx)

	if err := fn(customerRepo, projectRepo, itemRepo, quotationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunQuotation inicia una transacción solo con el repo de cotizaciones
// (crear con líneas, reemplazar líneas + totales).
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuotationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
