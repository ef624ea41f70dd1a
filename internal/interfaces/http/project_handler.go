package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
)

// ProjectHandler maneja las peticiones HTTP de proyectos (protegido).
type ProjectHandler struct {
	uc          *usecase.ProjectUseCase
	itemUC      *usecase.ServiceItemUseCase
	quotationUC *quotes.QuotationUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, itemUC *usecase.ServiceItemUseCase, quotationUC *quotes.QuotationUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, itemUC: itemUC, quotationUC: quotationUC}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	project, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// List GET /api/projects?limit=50&offset=0
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	project, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(project)
}

// Update PUT /api/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	project, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(project)
}

// Delete DELETE /api/projects/:id
// Borra el proyecto con sus ítems y su cotización en una transacción.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListItems GET /api/projects/:id/items
func (h *ProjectHandler) ListItems(c *fiber.Ctx) error {
	list, err := h.itemUC.ListByProject(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetQuotation GET /api/projects/:id/quotation
func (h *ProjectHandler) GetQuotation(c *fiber.Ctx) error {
	quotation, err := h.quotationUC.GetByProject(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quotation)
}
