// seed_admin crea (o actualiza) la cuenta de administrador inicial.
//
// Uso: ADMIN_EMAIL=... ADMIN_PASSWORD=... [ADMIN_NAME=...] go run ./cmd/seed_admin
// Requiere DATABASE_URL (misma configuración que el servidor).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/infrastructure/postgres"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/pkg/config"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL y ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	if name == "" {
		name = "Administrador"
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		// Cuenta ya registrada: se promueve a admin y se rota la credencial.
		_, err := pool.Exec(ctx,
			`UPDATE users SET name = $1, password_hash = $2, role = $3 WHERE email = $4`,
			name, string(hash), entity.RoleAdmin, email,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Actualizar admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cuenta %s actualizada como admin\n", email)
		return
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin %s creado (id %s)\n", email, user.ID)
}
