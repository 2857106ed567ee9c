package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// StakeholderUseCase gestiona proveedores y clientes. Se centralizan en un solo
// caso de uso para no multiplicar casos de uso pequeños con la misma forma.
type StakeholderUseCase struct {
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
}

// NewStakeholderUseCase construye el caso de uso.
func NewStakeholderUseCase(suppliers repository.SupplierRepository, customers repository.CustomerRepository) *StakeholderUseCase {
	return &StakeholderUseCase{suppliers: suppliers, customers: customers}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplier valida y persiste un proveedor nuevo.
func (uc *StakeholderUseCase) CreateSupplier(name, contactEmail, actor string) (*entity.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{Name: name, ContactEmail: strings.TrimSpace(contactEmail)}
	supplier.ID = uuid.New().String()
	supplier.TouchCreated(actor, time.Now())
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplierByID obtiene un proveedor (incluye borrados).
func (uc *StakeholderUseCase) GetSupplierByID(id string) (*entity.Supplier, error) {
	return uc.suppliers.GetByID(id)
}

// GetAllSuppliers lista proveedores; por defecto excluye borrados.
func (uc *StakeholderUseCase) GetAllSuppliers(includeDeleted bool) ([]*entity.Supplier, error) {
	return uc.suppliers.GetAll(includeDeleted)
}

// UpdateSupplier modifica nombre y email de contacto con estampa de edición.
func (uc *StakeholderUseCase) UpdateSupplier(id, name, contactEmail, actor string) error {
	name = strings.TrimSpace(name)
	if id == "" || name == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.IsDeleted {
		return domain.ErrNotFound
	}
	supplier.Name = name
	supplier.ContactEmail = strings.TrimSpace(contactEmail)
	supplier.TouchModified(actor, time.Now())
	return uc.suppliers.Update(supplier)
}

// DeleteSupplier marca el proveedor como borrado. Los lotes que lo referencian
// conservan la referencia para auditoría.
func (uc *StakeholderUseCase) DeleteSupplier(id, actor string) error {
	if id == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.suppliers.SoftDelete(id, actor, time.Now())
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateCustomer valida y persiste un cliente nuevo.
func (uc *StakeholderUseCase) CreateCustomer(name, taxID, actor string) (*entity.Customer, error) {
	name = strings.TrimSpace(name)
	taxID = strings.TrimSpace(taxID)
	if name == "" || taxID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{Name: name, TaxID: taxID}
	customer.ID = uuid.New().String()
	customer.TouchCreated(actor, time.Now())
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomerByID obtiene un cliente (incluye borrados).
func (uc *StakeholderUseCase) GetCustomerByID(id string) (*entity.Customer, error) {
	return uc.customers.GetByID(id)
}

// GetAllCustomers lista clientes; por defecto excluye borrados.
func (uc *StakeholderUseCase) GetAllCustomers(includeDeleted bool) ([]*entity.Customer, error) {
	return uc.customers.GetAll(includeDeleted)
}

// UpdateCustomer modifica nombre y NIT/cédula con estampa de edición.
func (uc *StakeholderUseCase) UpdateCustomer(id, name, taxID, actor string) error {
	name = strings.TrimSpace(name)
	taxID = strings.TrimSpace(taxID)
	if id == "" || name == "" || taxID == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil || customer.IsDeleted {
		return domain.ErrNotFound
	}
	customer.Name = name
	customer.TaxID = taxID
	customer.TouchModified(actor, time.Now())
	return uc.customers.Update(customer)
}

// DeleteCustomer marca el cliente como borrado.
func (uc *StakeholderUseCase) DeleteCustomer(id, actor string) error {
	if id == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil || customer.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.customers.SoftDelete(id, actor, time.Now())
}
