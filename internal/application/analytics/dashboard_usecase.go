// Package analytics contiene el caso de uso del resumen de actividad que
// alimenta el dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen de actividad: conteos por entidad,
// monto cotizado acumulado y comparación mes contra mes.
//
// Fuente de datos: StatsRepository (consultas read-only).
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountEntities                      → TotalCustomers/Projects/Quotations
//  2. QuotationTotal                     → TotalAmount
//  3. QuotationTotalBetween(mes actual)  → CurrentMonthAmount
//  4. QuotationTotalBetween(mes previo)  → PreviousMonthAmount
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha: [inicio de mes, inicio del mes siguiente) ────────────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type countsResult struct {
		counts repository.DashboardCounts
		err    error
	}
	type amountResult struct {
		amount decimal.Decimal
		err    error
	}

	countsCh := make(chan countsResult, 1)
	totalCh := make(chan amountResult, 1)
	currentCh := make(chan amountResult, 1)
	previousCh := make(chan amountResult, 1)

	go func() {
		c, err := uc.stats.CountEntities(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		a, err := uc.stats.QuotationTotal(ctx)
		totalCh <- amountResult{a, err}
	}()
	go func() {
		a, err := uc.stats.QuotationTotalBetween(ctx, monthStart, nextMonthStart)
		currentCh <- amountResult{a, err}
	}()
	go func() {
		a, err := uc.stats.QuotationTotalBetween(ctx, prevMonthStart, monthStart)
		previousCh <- amountResult{a, err}
	}()

	counts := <-countsCh
	total := <-totalCh
	current := <-currentCh
	previous := <-previousCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: monto acumulado: %w", total.err)
	}
	if current.err != nil {
		return nil, fmt.Errorf("dashboard: monto del mes: %w", current.err)
	}
	if previous.err != nil {
		return nil, fmt.Errorf("dashboard: monto del mes anterior: %w", previous.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalCustomers:      counts.counts.Customers,
		TotalProjects:       counts.counts.Projects,
		TotalQuotations:     counts.counts.Quotations,
		TotalAmount:         total.amount.Round(2),
		CurrentMonthAmount:  current.amount.Round(2),
		PreviousMonthAmount: previous.amount.Round(2),
		MonthlyChangePct:    monthlyChange(current.amount, previous.amount),
		DateLabel:           monthLabel(now),
	}, nil
}

// monthlyChange calcula la variación porcentual del mes en curso contra el
// anterior. Sin cotizaciones en el mes anterior no hay base de comparación:
// nil si el mes actual tiene monto, cero si ambos meses están vacíos.
func monthlyChange(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsPositive() {
		pct := current.Sub(previous).Div(previous).Mul(hundred).Round(1)
		return &pct
	}
	if current.IsPositive() {
		return nil
	}
	zero := decimal.Zero
	return &zero
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
