package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
)

// memSettingsRepo fila singleton en memoria.
type memSettingsRepo struct {
	row *entity.CompanySettings
}

func (r *memSettingsRepo) Get() (*entity.CompanySettings, error) {
	if r.row == nil {
		return nil, nil
	}
	cp := *r.row
	return &cp, nil
}

func (r *memSettingsRepo) Upsert(s *entity.CompanySettings) error {
	cp := *s
	// Como el ON CONFLICT de la tabla: la fila existente conserva su created_at.
	if r.row != nil {
		cp.CreatedAt = r.row.CreatedAt
	}
	r.row = &cp
	return nil
}

// Antes del primer guardado no hay configuración.
func TestSettingsGet_NuncaGuardada(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&memSettingsRepo{}, nil)

	_, err := uc.Get()
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// El primer Save crea la fila con el ID fijo; el segundo la actualiza sin
// crear otra.
func TestSettingsSave_UpsertSingleton(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo, nil)

	first, err := uc.Save(dto.SaveSettingsRequest{Name: "Acme Studio", Email: "hola@acme.dev"})
	require.NoError(t, err)
	assert.Equal(t, entity.CompanySettingsID, first.ID)

	second, err := uc.Save(dto.SaveSettingsRequest{Name: "Acme Studio SpA", Email: "hola@acme.dev"})
	require.NoError(t, err)
	assert.Equal(t, entity.CompanySettingsID, second.ID, "siempre la misma fila")
	assert.Equal(t, "Acme Studio SpA", repo.row.Name)
}

// Un segundo Save no altera la fecha de creación: la respuesta debe reportar
// el created_at persistido, no el del momento de la actualización.
func TestSettingsSave_ConservaCreatedAt(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo, nil)

	_, err := uc.Save(dto.SaveSettingsRequest{Name: "Acme Studio"})
	require.NoError(t, err)

	createdAt := time.Now().Add(-48 * time.Hour)
	repo.row.CreatedAt = createdAt

	updated, err := uc.Save(dto.SaveSettingsRequest{Name: "Acme Studio SpA"})
	require.NoError(t, err)
	assert.True(t, updated.CreatedAt.Equal(createdAt), "created_at debe conservarse tras actualizar")
	assert.True(t, repo.row.CreatedAt.Equal(createdAt))
}

func TestSettingsSave_NombreObligatorio(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&memSettingsRepo{}, nil)

	_, err := uc.Save(dto.SaveSettingsRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin bucket configurado la subida de logo está deshabilitada.
func TestSettingsUploadLogo_SinStorage(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&memSettingsRepo{}, nil)

	_, err := uc.UploadLogo(context.Background(), "logo.png", "image/png", strings.NewReader("png"))
	require.ErrorIs(t, err, usecase.ErrStorageDisabled)
}
