package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de catálogo.
type CreateItemRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Desc           string          `json:"desc"`
	Price          decimal.Decimal `json:"price"`
	PreviewImage   string          `json:"previewImage"`
	AssetBundleURL string          `json:"assetBundleUrl"`
	Category       string          `json:"category"`
}

// UpdateItemRequest entrada para editar un artículo (campos opcionales).
type UpdateItemRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Desc           *string          `json:"desc"`
	Price          *decimal.Decimal `json:"price"`
	PreviewImage   *string          `json:"previewImage"`
	AssetBundleURL *string          `json:"assetBundleUrl"`
	Category       *string          `json:"category"`
	Liked          *bool            `json:"liked"`
}

// ItemResponse salida de un artículo de catálogo.
type ItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Desc           string          `json:"desc"`
	Price          decimal.Decimal `json:"price"`
	PreviewImage   string          `json:"previewImage,omitempty"`
	AssetBundleURL string          `json:"assetBundleUrl,omitempty"`
	Category       string          `json:"category,omitempty"`
	Liked          bool            `json:"liked"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
