package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
)

// DesignHandler maneja las peticiones HTTP para diseños guardados, incluida
// la ingestión de escenas desde el visualizador 3D.
type DesignHandler struct {
	uc         *usecase.DesignUseCase
	ingest     *scene.IngestUseCase
	publicBase string
}

// NewDesignHandler construye el handler.
func NewDesignHandler(uc *usecase.DesignUseCase, ingest *scene.IngestUseCase, publicBase string) *DesignHandler {
	return &DesignHandler{uc: uc, ingest: ingest, publicBase: publicBase}
}

// SceneSaved godoc
// @Summary      Guardar escena del visualizador 3D
// @Tags         designs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SceneUploadRequest  true  "Escena serializada + screenshot base64 opcional"
// @Success      201   {object}  dto.SceneSavedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/designs/design-saved [post]
func (h *DesignHandler) SceneSaved(c *fiber.Ctx) error {
	var in dto.SceneUploadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ingest.Ingest(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.ScreenshotURL != nil {
		u := absoluteURL(c, h.publicBase, *out.ScreenshotURL)
		out.ScreenshotURL = &u
	}
	absolutizeDesign(c, h.publicBase, &out.Design)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create godoc
// @Summary      Crear diseño
// @Tags         designs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDesignRequest  true  "Datos del diseño"
// @Success      201   {object}  dto.DesignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/designs [post]
func (h *DesignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDesignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RoomType == "" {
		in.RoomType = "Unknown"
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	absolutizeDesign(c, h.publicBase, out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar diseños
// @Tags         designs
// @Produce      json
// @Param        recent  query  string  false  "1 = solo los 10 más recientes"
// @Success      200  {array}  dto.DesignResponse
// @Router       /api/designs [get]
func (h *DesignHandler) List(c *fiber.Ctx) error {
	recent := c.Query("recent") == "1"
	out, err := h.uc.List(c.UserContext(), recent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	absolutizeDesigns(c, h.publicBase, out)
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Listar diseños de un usuario
// @Tags         designs
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.DesignResponse
// @Router       /api/designs/user/{userId} [get]
func (h *DesignHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	out, err := h.uc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	absolutizeDesigns(c, h.publicBase, out)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener diseño por ID
// @Tags         designs
// @Produce      json
// @Param        id   path  string  true  "ID del diseño"
// @Success      200  {object}  dto.DesignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [get]
func (h *DesignHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diseño no encontrado"})
	}
	absolutizeDesign(c, h.publicBase, out)
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar diseño
// @Tags         designs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del diseño"
// @Param        body  body  dto.UpdateDesignRequest  true  "Datos a reemplazar"
// @Success      200   {object}  dto.DesignResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [put]
func (h *DesignHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDesignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RoomType == "" {
		in.RoomType = "Unknown"
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diseño no encontrado"})
	}
	absolutizeDesign(c, h.publicBase, out)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar diseño
// @Tags         designs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del diseño"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [delete]
func (h *DesignHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diseño no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Diseño eliminado"})
}
