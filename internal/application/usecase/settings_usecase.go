package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// ErrStorageDisabled subida de logo sin bucket configurado.
var ErrStorageDisabled = errors.New("almacenamiento de logos no configurado")

// SettingsUseCase casos de uso de la configuración de la empresa (fila
// singleton) y de la subida del logo.
type SettingsUseCase struct {
	settings repository.SettingsRepository
	storage  LogoStorage // nil = subida deshabilitada
}

// NewSettingsUseCase construye el caso de uso. storage puede ser nil.
func NewSettingsUseCase(settings repository.SettingsRepository, storage LogoStorage) *SettingsUseCase {
	return &SettingsUseCase{settings: settings, storage: storage}
}

// Get devuelve la configuración de la empresa. ErrNotFound si nunca se guardó.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSettingsResponse(s)
	return &resp, nil
}

// Save crea o actualiza la fila singleton de configuración.
func (uc *SettingsUseCase) Save(req dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la empresa es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	s := &entity.CompanySettings{
		ID:        entity.CompanySettingsID,
		Name:      strings.TrimSpace(req.Name),
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     strings.TrimSpace(req.Email),
		LogoURL:   req.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.settings.Upsert(s); err != nil {
		return nil, err
	}
	// El upsert conserva el created_at original de la fila; releer para
	// responder con los valores persistidos y no con los del entity en memoria.
	saved, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = s
	}
	resp := toSettingsResponse(saved)
	return &resp, nil
}

// UploadLogo sube el logo al bucket y devuelve su URL pública. La URL no se
// persiste aquí: el cliente debe guardarla luego con Save.
func (uc *SettingsUseCase) UploadLogo(ctx context.Context, filename, contentType string, r io.Reader) (*dto.UploadLogoResponse, error) {
	if uc.storage == nil {
		return nil, ErrStorageDisabled
	}
	url, err := uc.storage.Upload(ctx, filename, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("subir logo: %w", err)
	}
	return &dto.UploadLogoResponse{URL: url}, nil
}

func toSettingsResponse(s *entity.CompanySettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		LogoURL:   s.LogoURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
