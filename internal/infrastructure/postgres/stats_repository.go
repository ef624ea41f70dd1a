package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el resumen del dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountEntities cuenta clientes, proyectos y cotizaciones en una sola consulta.
func (r *StatsRepo) CountEntities(ctx context.Context) (repository.DashboardCounts, error) {
	const query = `
		SELECT
		    (SELECT COUNT(*) FROM customers)  AS customers,
		    (SELECT COUNT(*) FROM projects)   AS projects,
		    (SELECT COUNT(*) FROM quotations) AS quotations`

	var c repository.DashboardCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&c.Customers, &c.Projects, &c.Quotations); err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("stats.CountEntities: %w", err)
	}
	return c, nil
}

// QuotationTotal suma el total de todas las cotizaciones.
// COALESCE devuelve cero cuando la tabla está vacía.
func (r *StatsRepo) QuotationTotal(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(total), 0) FROM quotations`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("stats.QuotationTotal: %w", err)
	}
	return sum, nil
}

// QuotationTotalBetween suma los totales de las cotizaciones creadas en [start, end).
func (r *StatsRepo) QuotationTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0)
		FROM quotations
		WHERE created_at >= $1 AND created_at < $2`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("stats.QuotationTotalBetween: %w", err)
	}
	return sum, nil
}
