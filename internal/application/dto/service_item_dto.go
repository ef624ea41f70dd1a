package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceItemRequest payload para crear un ítem de servicio.
type CreateServiceItemRequest struct {
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateServiceItemRequest payload para actualizar un ítem de servicio.
type UpdateServiceItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ServiceItemResponse representación de un ítem de servicio en la API.
type ServiceItemResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
