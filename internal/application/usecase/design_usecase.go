package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/design"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// DesignUseCase casos de uso CRUD para diseños guardados. Toda lectura
// devuelve el diseño resuelto (populate) con el totalPrice recalculado.
type DesignUseCase struct {
	repo repository.DesignRepository
	// defaultOwnerID dueño asignado en creación directa. Limitación conocida
	// heredada del backend original: la identidad del token no se usa aquí.
	defaultOwnerID string
}

// NewDesignUseCase construye el caso de uso.
func NewDesignUseCase(repo repository.DesignRepository, defaultOwnerID string) *DesignUseCase {
	return &DesignUseCase{repo: repo, defaultOwnerID: defaultOwnerID}
}

// Create crea un diseño completo vía API directa.
func (uc *DesignUseCase) Create(ctx context.Context, in dto.CreateDesignRequest) (*dto.DesignResponse, error) {
	d := &entity.Design{
		ID:        uuid.New().String(),
		UserID:    uc.defaultOwnerID,
		RoomType:  in.RoomType,
		Items:     placedItemsFrom(in.Items),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	// Releer resuelto para responder con referencias pobladas y total.
	saved, err := uc.repo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = d
	}
	return toDesignResponse(saved), nil
}

// List lista todos los diseños; recent=true limita a los 10 más nuevos.
func (uc *DesignUseCase) List(ctx context.Context, recent bool) ([]dto.DesignResponse, error) {
	list, err := uc.repo.List(ctx, recent)
	if err != nil {
		return nil, err
	}
	return toDesignResponses(list), nil
}

// ListByUser lista los diseños de un usuario.
func (uc *DesignUseCase) ListByUser(ctx context.Context, userID string) ([]dto.DesignResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDesignResponses(list), nil
}

// GetByID obtiene un diseño por id. Devuelve nil, nil si no existe.
func (uc *DesignUseCase) GetByID(ctx context.Context, id string) (*dto.DesignResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDesignResponse(d), nil
}

// Update reemplaza por completo los campos del diseño. Devuelve nil, nil si
// el id no existe.
func (uc *DesignUseCase) Update(ctx context.Context, id string, in dto.UpdateDesignRequest) (*dto.DesignResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.RoomType = in.RoomType
	existing.Items = placedItemsFrom(in.Items)
	if err := uc.repo.Replace(ctx, existing); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDesignResponse(updated), nil
}

// Delete elimina un diseño. La imagen de preview queda huérfana (no se borra
// en cascada). ErrNotFound si el id no existe.
func (uc *DesignUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func placedItemsFrom(in []dto.PlacedItemRequest) []entity.PlacedItem {
	items := make([]entity.PlacedItem, 0, len(in))
	for _, r := range in {
		scale := entity.Vec3One()
		if r.Scale != nil {
			scale = entity.Vec3(*r.Scale)
		}
		items = append(items, entity.PlacedItem{
			ItemID:   r.ItemID,
			Position: entity.Vec3(r.Position),
			Rotation: entity.Vec3(r.Rotation),
			Scale:    scale,
		})
	}
	return items
}

func toDesignResponses(list []*entity.Design) []dto.DesignResponse {
	out := make([]dto.DesignResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDesignResponse(d))
	}
	return out
}

// toDesignResponse arma la vista resuelta e inyecta el total calculado.
func toDesignResponse(d *entity.Design) *dto.DesignResponse {
	if d == nil {
		return nil
	}
	items := make([]dto.PlacedItemResponse, 0, len(d.Items))
	for _, placed := range d.Items {
		item := dto.PlacedItemResponse{
			ItemID:   placed.ItemID,
			Position: dto.Vec3DTO(placed.Position),
			Rotation: dto.Vec3DTO(placed.Rotation),
			Scale:    dto.Vec3DTO(placed.Scale),
		}
		if placed.Item != nil {
			item.Item = &dto.ItemRefResponse{
				ID:           placed.Item.ID,
				Name:         placed.Item.Name,
				Desc:         placed.Item.Description,
				Price:        placed.Item.Price,
				PreviewImage: placed.Item.PreviewImage,
				Category:     placed.Item.Category,
			}
		}
		items = append(items, item)
	}
	resp := &dto.DesignResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		RoomType:   d.RoomType,
		Items:      items,
		TotalPrice: dto.MoneyNumber(design.TotalPrice(d)),
		CreatedAt:  d.CreatedAt,
	}
	if d.Owner != nil {
		resp.User = &dto.UserRefResponse{ID: d.Owner.ID, Name: d.Owner.Name, Email: d.Owner.Email}
	}
	if d.ScreenshotURL != "" {
		u := d.ScreenshotURL
		resp.ScreenshotURL = &u
	}
	return resp
}
