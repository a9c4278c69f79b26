package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price acepta número o
// string decimal ("10.00"); es puntero para distinguir ausente de cero.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Color       string           `json:"color" validate:"required,oneof=amber rose blue"`
	Image       string           `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial: campo
// omitido conserva su valor). Image es la excepción: si la clave viene en el
// body sobrescribe aunque sea vacía (vacío = limpiar la imagen).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Color       *string          `json:"color" validate:"omitempty,oneof=amber rose blue"`
	Image       *string          `json:"image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
