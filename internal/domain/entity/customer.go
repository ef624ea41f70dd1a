package entity

import "time"

// Customer representa un cliente al que se le cotizan proyectos.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Company   string // razón social opcional; vacío = persona natural
	CreatedAt time.Time
	UpdatedAt time.Time
}
