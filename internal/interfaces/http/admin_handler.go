package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
)

// AdminHandler operaciones de mantenimiento del modo kiosko (solo admin).
type AdminHandler struct {
	uc *usecase.KioskUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.KioskUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ResetSession godoc
// @Summary      Reiniciar sesión del kiosko
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/kiosk/reset-session [post]
func (h *AdminHandler) ResetSession(c *fiber.Ctx) error {
	// El estado de sesión vive en el cliente kiosko; el servidor solo confirma.
	return c.JSON(dto.MessageResponse{Message: "Sesión de kiosko reiniciada"})
}

// ResetHard godoc
// @Summary      Borrado duro del kiosko
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/kiosk/reset-hard [post]
func (h *AdminHandler) ResetHard(c *fiber.Ctx) error {
	if err := h.uc.ResetHard(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Diseños y cotizaciones eliminados"})
}

// Status godoc
// @Summary      Estado del datastore
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/admin/status [get]
func (h *AdminHandler) Status(c *fiber.Ctx) error {
	status := "disconnected"
	if h.uc.DBConnected(c.UserContext()) {
		status = "connected"
	}
	return c.JSON(dto.StatusResponse{
		DBStatus: status,
		Time:     time.Now().Format(time.RFC3339),
	})
}
