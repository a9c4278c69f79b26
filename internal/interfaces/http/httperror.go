package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/essence-api/internal/application/dto"
	"github.com/jhoicas/essence-api/internal/domain"
)

// respondError mapea el set cerrado de errores de dominio a códigos de estado
// HTTP en un único punto; cualquier otro error es un 500 genérico. Ningún
// error se reintenta ni deja estado parcial persistido.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere acceso de administrador"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUploadRejected):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UPLOAD_REJECTED", Message: "se requiere un archivo de imagen"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
