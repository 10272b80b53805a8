package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD del catálogo de muebles.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. Price ausente queda en 0.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Desc,
		Price:          in.Price,
		PreviewImage:   in.PreviewImage,
		AssetBundleURL: in.AssetBundleURL,
		Category:       in.Category,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo. Devuelve nil, nil si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista el catálogo con filtros opcionales de categoría y búsqueda.
func (uc *ItemUseCase) List(ctx context.Context, filter repository.ItemFilter) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// Update edita un artículo. Devuelve nil, nil si el id no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Desc != nil {
		item.Description = *in.Desc
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.PreviewImage != nil {
		item.PreviewImage = *in.PreviewImage
	}
	if in.AssetBundleURL != nil {
		item.AssetBundleURL = *in.AssetBundleURL
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Liked != nil {
		item.Liked = *in.Liked
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ToggleLike invierte el flag liked. Devuelve nil, nil si el id no existe.
func (uc *ItemUseCase) ToggleLike(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.Liked = !item.Liked
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo. ErrNotFound si el id no existe.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Desc:           i.Description,
		Price:          i.Price,
		PreviewImage:   i.PreviewImage,
		AssetBundleURL: i.AssetBundleURL,
		Category:       i.Category,
		Liked:          i.Liked,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
