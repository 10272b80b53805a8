package repository

import (
	"context"
	"time"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// RoomRepository puerto de lectura de plantillas de habitación (sync).
type RoomRepository interface {
	// ListUpdatedSince pull incremental por updated_at. since nil devuelve todo.
	ListUpdatedSince(ctx context.Context, since *time.Time) ([]*entity.Room, error)
}
