package repository

import (
	"time"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetAll(includeDeleted bool) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	SoftDelete(id, actor string, now time.Time) error
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetAll(includeDeleted bool) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	SoftDelete(id, actor string, now time.Time) error
}
