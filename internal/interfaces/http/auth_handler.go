package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/essence-api/internal/application/auth"
	"github.com/jhoicas/essence-api/internal/application/dto"
)

// CookieConfig parámetros de la cookie de sesión (derivados de la config en main).
type CookieConfig struct {
	MaxAge int  // segundos; igual a la vida del token
	Secure bool // true en producción
}

// AuthHandler maneja el login.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	// El token viaja únicamente en la cookie http-only, nunca en el body.
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    out.Token,
		MaxAge:   h.cookie.MaxAge,
		Path:     "/",
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.LoginResponse{Success: true, User: out.User})
}
