package repository

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la fila singleton
// de configuración de la empresa.
type SettingsRepository interface {
	// Get devuelve la configuración o nil si aún no se ha guardado.
	Get() (*entity.CompanySettings, error)
	// Upsert inserta o actualiza la fila con el ID fijo.
	Upsert(s *entity.CompanySettings) error
}
