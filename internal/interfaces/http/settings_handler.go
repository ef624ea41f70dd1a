package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
)

// SettingsHandler maneja la configuración de la empresa y la subida del logo (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}

// Save PUT /api/settings
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.uc.Save(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}

// UploadLogo POST /api/settings/logo (multipart, campo "logo")
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart con el campo logo"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	resp, err := h.uc.UploadLogo(c.UserContext(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, usecase.ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_DISABLED", Message: err.Error()})
		}
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
