// seed_admin crea el usuario administrador inicial del catálogo.
//
// Uso: go run ./cmd/seed_admin
// Lee ADMIN_EMAIL y ADMIN_PASSWORD del entorno (por defecto
// admin@essence.com / admin123); el resto de la configuración vía pkg/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/essence-api/internal/application/auth"
	"github.com/jhoicas/essence-api/internal/domain"
	"github.com/jhoicas/essence-api/internal/infrastructure/postgres"
	"github.com/jhoicas/essence-api/pkg/config"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@essence.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})

	user, err := authUC.ProvisionAdmin(email, password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Fprintf(os.Stderr, "El admin %s ya existe\n", email)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin creado: %s (id %s)\n", user.Email, user.ID)
}
