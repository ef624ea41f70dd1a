package entity

import "time"

// User representa un usuario del espacio de trabajo (auth).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
