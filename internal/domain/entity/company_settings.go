package entity

import "time"

// CompanySettingsID es el identificador fijo de la fila singleton de
// configuración de la empresa emisora. Nunca existe más de una fila.
const CompanySettingsID = "company-settings"

// CompanySettings son los datos de la empresa que emite las cotizaciones.
// Se crea de forma perezosa en el primer guardado (upsert sobre el ID fijo).
type CompanySettings struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	LogoURL   string // URL pública en el bucket; vacío = sin logo
	CreatedAt time.Time
	UpdatedAt time.Time
}
