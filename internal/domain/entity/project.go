package entity

import "time"

// Estados del proyecto.
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
)

// Monedas soportadas para proyectos y cotizaciones.
const (
	CurrencyLKR = "LKR"
	CurrencyUSD = "USD"
	CurrencyAUD = "AUD"
)

// Project representa un proyecto de un cliente. Los ítems de servicio y la
// cotización cuelgan de él; su moneda se hereda en la cotización.
type Project struct {
	ID          string
	CustomerID  string
	Name        string
	Description string
	StartDate   time.Time
	Status      string // ver constantes ProjectStatus*
	Currency    string // ver constantes Currency*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidProjectStatus verifica que el estado pertenezca al conjunto permitido.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// ValidCurrency verifica que la moneda pertenezca al conjunto permitido.
func ValidCurrency(c string) bool {
	switch c {
	case CurrencyLKR, CurrencyUSD, CurrencyAUD:
		return true
	}
	return false
}
