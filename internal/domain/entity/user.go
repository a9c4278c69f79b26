package entity

import "time"

// User usuario del sistema. Se crea fuera de banda (cmd/seed_admin); los
// flujos de la API nunca lo mutan ni lo eliminan.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	IsAdmin      bool   // habilita todos los endpoints de mutación del catálogo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
