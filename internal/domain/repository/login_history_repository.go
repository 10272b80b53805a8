package repository

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// LoginHistoryRepository puerto append-only de auditoría de logins.
type LoginHistoryRepository interface {
	Append(ctx context.Context, record *entity.LoginHistory) error
}
