package repository

import (
	"time"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve el producto aunque esté borrado (auditoría consultable).
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetAll(includeDeleted bool) ([]*entity.Product, error)
	Update(product *entity.Product) error
	SoftDelete(id, actor string, now time.Time) error
}
