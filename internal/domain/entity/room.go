package entity

import "time"

// Room plantilla de habitación para sincronización del cliente (no tiene
// relación por clave con Design).
type Room struct {
	ID        string
	Name      string   // ej. "Modern Kitchen"
	Type      string   // ej. "Kitchen", "Bedroom"
	Assets    []string // rutas o URLs de assets
	CreatedAt time.Time
	UpdatedAt time.Time
}
