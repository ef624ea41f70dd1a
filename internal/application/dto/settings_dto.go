package dto

import "time"

// SaveSettingsRequest payload para guardar la configuración de la empresa.
type SaveSettingsRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url"`
}

// SettingsResponse representación de la configuración de la empresa.
type SettingsResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UploadLogoResponse URL pública del logo recién subido. El cliente debe
// guardarla luego con SaveSettingsRequest para que quede persistida.
type UploadLogoResponse struct {
	URL string `json:"url"`
}
