package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResult resultado interno del login: el token viaja en la cookie
// http-only, nunca en el body de la respuesta.
type LoginResult struct {
	Token string
	User  UserResponse
}

// LoginResponse cuerpo de respuesta del login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
