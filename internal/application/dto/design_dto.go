package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Vec3DTO componente 3D en el wire (mismo shape que el documento persistido).
type Vec3DTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SceneUploadRequest cuerpo del callback del visualizador 3D:
// scene es un JSON serializado producido por el cliente, screenshot es PNG en
// base64 (opcional).
type SceneUploadRequest struct {
	Scene      string `json:"scene"`
	Screenshot string `json:"screenshot"`
}

// SceneSavedResponse sobre de confirmación de la ingestión de escena.
// ScreenshotURL es null cuando no se envió imagen (o cuando su persistencia
// falló después de crear el diseño: estado parcial documentado).
type SceneSavedResponse struct {
	Message       string         `json:"message"`
	DesignID      string         `json:"designId"`
	ScreenshotURL *string        `json:"screenshotUrl"`
	Design        DesignResponse `json:"design"`
}

// PlacedItemRequest artículo colocado en creación/reemplazo directo de diseños.
// Scale nil toma el neutro (1,1,1).
type PlacedItemRequest struct {
	ItemID   string   `json:"itemId"`
	Position Vec3DTO  `json:"position"`
	Rotation Vec3DTO  `json:"rotation"`
	Scale    *Vec3DTO `json:"scale"`
}

// CreateDesignRequest creación directa vía API (no vía escena).
type CreateDesignRequest struct {
	RoomType string              `json:"roomType"`
	Items    []PlacedItemRequest `json:"items"`
}

// UpdateDesignRequest reemplazo completo de los campos del diseño.
type UpdateDesignRequest struct {
	RoomType string              `json:"roomType"`
	Items    []PlacedItemRequest `json:"items"`
}

// ItemRefResponse artículo de catálogo resuelto dentro de un diseño
// (subconjunto del populate: name, desc, price, previewImage, category).
type ItemRefResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Desc         string          `json:"desc"`
	Price        decimal.Decimal `json:"price"`
	PreviewImage string          `json:"previewImage,omitempty"`
	Category     string          `json:"category,omitempty"`
}

// UserRefResponse dueño resuelto (subconjunto name/email).
type UserRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PlacedItemResponse artículo colocado en respuestas.
type PlacedItemResponse struct {
	ItemID   string           `json:"itemId"`
	Item     *ItemRefResponse `json:"item,omitempty"`
	Position Vec3DTO          `json:"position"`
	Rotation Vec3DTO          `json:"rotation"`
	Scale    Vec3DTO          `json:"scale"`
}

// DesignResponse salida de un diseño. TotalPrice se recalcula en cada lectura
// (nunca se persiste) y se serializa como número JSON, no como string: los
// clientes hacen aritmética directa sobre él. Queda vacío en la respuesta de
// ingestión, donde el diseño aún no está resuelto contra el catálogo.
type DesignResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"userId"`
	User          *UserRefResponse     `json:"user,omitempty"`
	RoomType      string               `json:"roomType"`
	Items         []PlacedItemResponse `json:"items"`
	ScreenshotURL *string              `json:"screenshotUrl"`
	TotalPrice    json.Number          `json:"totalPrice,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// MoneyNumber convierte un decimal a número JSON sin comillas (el
// MarshalJSON por defecto de shopspring emite strings).
func MoneyNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
