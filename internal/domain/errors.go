package domain

import "errors"

// Errores de dominio (sin dependencias externas). Set cerrado: los handlers
// HTTP los mapean a códigos de estado en un único punto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUploadRejected     = errors.New("archivo rechazado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
