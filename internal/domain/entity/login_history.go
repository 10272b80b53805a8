package entity

import "time"

// Estados de un intento de login.
const (
	LoginSuccess = "success"
	LoginFail    = "fail"
)

// LoginHistory registro de auditoría de un intento de autenticación.
// Append-only: nunca se actualiza ni se borra en operación normal.
type LoginHistory struct {
	ID        string
	Name      string
	Email     string
	Status    string // success, fail
	CreatedAt time.Time
}
