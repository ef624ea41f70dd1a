package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc          *usecase.CustomerUseCase
	projectUC   *usecase.ProjectUseCase
	quotationUC *quotes.QuotationUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, projectUC *usecase.ProjectUseCase, quotationUC *quotes.QuotationUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, projectUC: projectUC, quotationUC: quotationUC}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?limit=50&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
// Borra al cliente con sus proyectos, ítems y cotizaciones en una transacción.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProjects GET /api/customers/:id/projects
func (h *CustomerHandler) ListProjects(c *fiber.Ctx) error {
	list, err := h.projectUC.ListByCustomer(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// ListQuotations GET /api/customers/:id/quotations
func (h *CustomerHandler) ListQuotations(c *fiber.Ctx) error {
	list, err := h.quotationUC.ListByCustomer(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}
