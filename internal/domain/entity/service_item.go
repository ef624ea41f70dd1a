package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem representa un servicio facturable dentro de un proyecto.
// Es la fuente de verdad de los montos: la cotización guarda copias.
type ServiceItem struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Quantity    decimal.Decimal // admite fracciones (ej. 1.5 horas)
	Price       decimal.Decimal // precio unitario en la moneda del proyecto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
