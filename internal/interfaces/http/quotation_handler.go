package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
)

// QuotationHandler maneja las peticiones HTTP de cotizaciones (protegido).
type QuotationHandler struct {
	uc    *quotes.QuotationUseCase
	pdfUC *quotes.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotes.QuotationUseCase, pdfUC *quotes.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/quotations
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quotation, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quotation)
}

// List GET /api/quotations?limit=50&offset=0
func (h *QuotationHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/quotations/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	quotation, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quotation)
}

// Update PUT /api/quotations/:id
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quotation, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quotation)
}

// UpdateStatus PATCH /api/quotations/:id/status
func (h *QuotationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuotationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quotation, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quotation)
}

// Delete DELETE /api/quotations/:id
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/quotations/:id/pdf
func (h *QuotationHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.Generate(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
