package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/essence-api/internal/application/auth"
	"github.com/jhoicas/essence-api/internal/application/dto"
	"github.com/jhoicas/essence-api/internal/domain"
	"github.com/jhoicas/essence-api/internal/domain/entity"
)

// CookieName nombre de la cookie de sesión.
const CookieName = "token"

// LocalUser key del usuario autenticado en Locals de Fiber.
const LocalUser = "auth_user"

// AuthMiddleware aplica el predicado de autorización a las rutas de mutación:
// cookie -> verificar token -> cargar usuario -> exigir admin. Se aplica de
// forma uniforme a create/update/delete de productos y al upload; las lecturas
// públicas del catálogo no pasan por aquí.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authUC.Authorize(c.Cookies(CookieName))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token ausente, inválido o expirado"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetAuthUser devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetAuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
