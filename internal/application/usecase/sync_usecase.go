package usecase

import (
	"context"
	"time"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// SyncUseCase pull incremental de habitaciones y catálogo para clientes
// offline (kiosko, móvil). El cursor es el updated_at que el cliente vio por
// última vez; nil devuelve la colección completa.
type SyncUseCase struct {
	rooms repository.RoomRepository
	items repository.ItemRepository
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(rooms repository.RoomRepository, items repository.ItemRepository) *SyncUseCase {
	return &SyncUseCase{rooms: rooms, items: items}
}

// Rooms devuelve las plantillas de habitación actualizadas después de since.
func (uc *SyncUseCase) Rooms(ctx context.Context, since *time.Time) ([]dto.RoomResponse, error) {
	list, err := uc.rooms.ListUpdatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RoomResponse{
			ID:        r.ID,
			Name:      r.Name,
			Type:      r.Type,
			Assets:    r.Assets,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

// Items devuelve los artículos de catálogo actualizados después de since.
func (uc *SyncUseCase) Items(ctx context.Context, since *time.Time) ([]dto.ItemResponse, error) {
	list, err := uc.items.ListUpdatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}
