package entity

import (
	"strings"

	"github.com/jhoicas/almacen/internal/domain"
)

// Categorías permitidas para Product. Se persisten por nombre (texto legible en la BD).
const (
	CategoryGroceries   = "Groceries"
	CategoryElectronics = "Electronics"
	CategoryGeneral     = "General"
)

// ParseCategory valida una categoría escrita por el usuario (sin distinguir mayúsculas).
func ParseCategory(s string) (string, error) {
	for _, c := range []string{CategoryGroceries, CategoryElectronics, CategoryGeneral} {
		if strings.EqualFold(s, c) {
			return c, nil
		}
	}
	return "", domain.ErrInvalidInput
}

// Product representa la definición de catálogo de un producto (no el stock físico).
// El stock nunca es un campo: siempre se deriva sumando los lotes activos.
type Product struct {
	Auditable
	Name         string
	SKU          string // código único
	Category     string
	IsPerishable bool // true: todo lote del producto exige fecha de caducidad futura
}
