package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// User representa una cuenta de la aplicación. Posee diseños y cotizaciones
// por referencia.
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // customer, staff, admin
	CreatedAt    time.Time
}
