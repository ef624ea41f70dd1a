package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts totales de filas por entidad para el resumen del dashboard.
type DashboardCounts struct {
	Customers  int
	Projects   int
	Quotations int
}

// StatsRepository define las consultas de lectura para el resumen del
// dashboard. Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	// CountEntities devuelve cuántos clientes, proyectos y cotizaciones existen.
	CountEntities(ctx context.Context) (DashboardCounts, error)

	// QuotationTotal devuelve la suma de los totales de todas las cotizaciones.
	// Cero si no hay ninguna.
	QuotationTotal(ctx context.Context) (decimal.Decimal, error)

	// QuotationTotalBetween suma los totales de las cotizaciones creadas en
	// [start, end). Cero si el rango no tiene cotizaciones.
	QuotationTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
