package dto

import "time"

// CreateProjectRequest payload para crear un proyecto.
type CreateProjectRequest struct {
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	Status      string `json:"status"`     // pending, in-progress, completed (default: pending)
	Currency    string `json:"currency"`   // LKR, USD, AUD
}

// UpdateProjectRequest payload para actualizar un proyecto.
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
}

// ProjectResponse representación de un proyecto en la API.
type ProjectResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	Status      string    `json:"status"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
