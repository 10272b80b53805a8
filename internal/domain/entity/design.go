package entity

import "time"

// Vec3 transformación 3D por componente. Los tags JSON definen también la
// forma del documento JSONB persistido.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3One escala neutra (1,1,1).
func Vec3One() Vec3 { return Vec3{X: 1, Y: 1, Z: 1} }

// PlacedItem es un artículo colocado dentro de un diseño: referencia al
// catálogo más su transformación. Es un valor embebido del Design, no una
// entidad propia.
type PlacedItem struct {
	ItemID   string `json:"itemId"`
	Position Vec3   `json:"position"`
	Rotation Vec3   `json:"rotation"`
	Scale    Vec3   `json:"scale"`

	// Item resuelto por el repositorio (populate). Nunca se persiste: una
	// referencia sin resolver vale cero en la valoración.
	Item *Item `json:"-"`
}

// Design es una escena de habitación guardada: secuencia ordenada de artículos
// colocados, con un screenshot opcional. Se crea completo y se muta solo por
// reemplazo total de sus campos.
type Design struct {
	ID            string
	UserID        string
	RoomType      string
	Items         []PlacedItem
	ScreenshotURL string // vacío = sin screenshot
	CreatedAt     time.Time

	// Owner resuelto por el repositorio (populate), puede ser nil.
	Owner *User
}
