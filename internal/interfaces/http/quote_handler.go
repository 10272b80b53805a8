package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// QuoteHandler maneja las peticiones HTTP para cotizaciones.
type QuoteHandler struct {
	uc         *usecase.QuoteUseCase
	publicBase string
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, publicBase string) *QuoteHandler {
	return &QuoteHandler{uc: uc, publicBase: publicBase}
}

// Create godoc
// @Summary      Crear cotización
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Datos de la cotización"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío"})
	}
	for i, l := range in.Items {
		if l.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fmt.Sprintf("items[%d].quantity debe ser mayor que cero", i)})
		}
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	absolutizeQuote(c, h.publicBase, out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotes
// @Produce      json
// @Param        status  query  string  false  "pending | approved | rejected"
// @Param        userId  query  string  false  "Filtrar por dueño"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Success      200  {array}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	filter := repository.QuoteFilter{
		Status: c.Query("status"),
		UserID: c.Query("userId"),
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		filter.To = &t
	}
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	for i := range out {
		absolutizeQuote(c, h.publicBase, &out[i])
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización por ID
// @Tags         quotes
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	absolutizeQuote(c, h.publicBase, out)
	return c.JSON(out)
}

// PDF godoc
// @Summary      Exportar cotización en PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.uc.GeneratePDF(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="cotizacion_%s.pdf"`, id))
	return c.Send(doc)
}
