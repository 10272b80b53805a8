package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
)

// SyncHandler expone la descarga incremental de catálogo y habitaciones para
// el cliente 3D.
type SyncHandler struct {
	uc *usecase.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Rooms godoc
// @Summary      Sincronizar habitaciones
// @Tags         sync
// @Produce      json
// @Param        lastUpdated  query  string  false  "Solo cambios posteriores (RFC3339)"
// @Success      200  {array}  dto.RoomResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sync/rooms [get]
func (h *SyncHandler) Rooms(c *fiber.Ctx) error {
	since, err := parseLastUpdated(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lastUpdated debe ser RFC3339"})
	}
	out, err := h.uc.Rooms(c.UserContext(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Sincronizar catálogo
// @Tags         sync
// @Produce      json
// @Param        lastUpdated  query  string  false  "Solo cambios posteriores (RFC3339)"
// @Success      200  {array}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sync/items [get]
func (h *SyncHandler) Items(c *fiber.Ctx) error {
	since, err := parseLastUpdated(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lastUpdated debe ser RFC3339"})
	}
	out, err := h.uc.Items(c.UserContext(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseLastUpdated devuelve nil si no se envió el parámetro (pull completo).
func parseLastUpdated(c *fiber.Ctx) (*time.Time, error) {
	raw := c.Query("lastUpdated")
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
