package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
)

// ServiceItemHandler maneja las peticiones HTTP de ítems de servicio (protegido).
type ServiceItemHandler struct {
	uc *usecase.ServiceItemUseCase
}

// NewServiceItemHandler construye el handler.
func NewServiceItemHandler(uc *usecase.ServiceItemUseCase) *ServiceItemHandler {
	return &ServiceItemHandler{uc: uc}
}

// Create POST /api/items
func (h *ServiceItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetByID GET /api/items/:id
func (h *ServiceItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

// Update PUT /api/items/:id
func (h *ServiceItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

// Delete DELETE /api/items/:id
func (h *ServiceItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
