package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo lectura de plantillas de habitación para sync. Los assets viven en
// una columna JSONB (lista de rutas/URLs).
type RoomRepo struct {
	pool *pgxpool.Pool
}

// NewRoomRepository construye el adaptador.
func NewRoomRepository(pool *pgxpool.Pool) *RoomRepo {
	return &RoomRepo{pool: pool}
}

// ListUpdatedSince pull incremental por updated_at; since nil devuelve todo.
func (r *RoomRepo) ListUpdatedSince(ctx context.Context, since *time.Time) ([]*entity.Room, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(type, ''), assets, created_at, updated_at
		FROM rooms`
	var args []any
	if since != nil {
		query += ` WHERE updated_at > $1`
		args = append(args, *since)
	}
	query += ` ORDER BY updated_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sync rooms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Room
	for rows.Next() {
		var (
			room       entity.Room
			assetsJSON []byte
		)
		if err := rows.Scan(&room.ID, &room.Name, &room.Type, &assetsJSON, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		if len(assetsJSON) > 0 {
			if err := json.Unmarshal(assetsJSON, &room.Assets); err != nil {
				return nil, fmt.Errorf("deserializar assets: %w", err)
			}
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}
