package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository. La tabla contiene a lo
// sumo una fila, con el ID fijo entity.CompanySettingsID.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración de la empresa, o nil si aún no se guardó.
func (r *SettingsRepo) Get() (*entity.CompanySettings, error) {
	query := `
		SELECT id, name, address, phone, email, COALESCE(logo_url, ''), created_at, updated_at
		FROM company_settings WHERE id = $1`
	var s entity.CompanySettings
	err := r.q.QueryRow(context.Background(), query, entity.CompanySettingsID).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila singleton (creación perezosa en el primer guardado).
func (r *SettingsRepo) Upsert(s *entity.CompanySettings) error {
	s.ID = entity.CompanySettingsID
	query := `
		INSERT INTO company_settings (id, name, address, phone, email, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
		    email = EXCLUDED.email, logo_url = EXCLUDED.logo_url, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Address, s.Phone, s.Email, nullIfEmpty(s.LogoURL),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company settings: %w", err)
	}
	return nil
}
