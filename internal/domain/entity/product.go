package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colores válidos para Product.
const (
	ColorAmber = "amber"
	ColorRose  = "rose"
	ColorBlue  = "blue"
)

// DefaultColor color por defecto del catálogo.
const DefaultColor = ColorAmber

// IsValidColor indica si s es uno de los colores del catálogo.
func IsValidColor(s string) bool {
	return s == ColorAmber || s == ColorRose || s == ColorBlue
}

// Product artículo del catálogo público. Image es una ruta relativa dentro del
// directorio de uploads; vacío significa sin imagen.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Color       string          // amber, rose, blue
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
