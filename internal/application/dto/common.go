// Package dto define los contratos de entrada/salida de la API HTTP.
// Las fechas viajan como "YYYY-MM-DD"; los montos como números decimales.
package dto

// DateLayout formato de fecha aceptado en los requests.
const DateLayout = "2006-01-02"

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest parámetros de paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize aplica los valores por defecto y topes de la paginación.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 200 {
		p.Limit = 200
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
