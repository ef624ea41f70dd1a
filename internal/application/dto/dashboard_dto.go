package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contiene los conteos por entidad y el monto cotizado acumulado, más la
// comparación mes contra mes.
type DashboardSummaryDTO struct {
	TotalCustomers  int `json:"total_customers"`
	TotalProjects   int `json:"total_projects"`
	TotalQuotations int `json:"total_quotations"`

	// Suma de los totales de todas las cotizaciones
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Monto cotizado del mes en curso y del anterior (por created_at)
	CurrentMonthAmount  decimal.Decimal `json:"current_month_amount"`
	PreviousMonthAmount decimal.Decimal `json:"previous_month_amount"`

	// Variación porcentual contra el mes anterior. null cuando el mes
	// anterior no tiene cotizaciones y el actual sí (sin base de comparación).
	MonthlyChangePct *decimal.Decimal `json:"monthly_change_pct"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}
