package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// CreateProductInput entrada para crear un producto de catálogo.
type CreateProductInput struct {
	Name         string
	SKU          string
	Category     string
	IsPerishable bool
	Actor        string
}

// Create valida y persiste un producto nuevo. SKU duplicado => ErrDuplicate.
func (uc *ProductUseCase) Create(in CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" || in.Actor == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := entity.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		Name:         name,
		SKU:          sku,
		Category:     category,
		IsPerishable: in.IsPerishable,
	}
	product.ID = uuid.New().String()
	product.TouchCreated(in.Actor, time.Now())
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID (incluye borrados: auditoría consultable).
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// GetAll lista productos; por defecto excluye los borrados lógicamente.
func (uc *ProductUseCase) GetAll(includeDeleted bool) ([]*entity.Product, error) {
	return uc.repo.GetAll(includeDeleted)
}

// UpdateProductInput entrada para editar un producto. El SKU es inmutable.
type UpdateProductInput struct {
	ID           string
	Name         string
	Category     string
	IsPerishable bool
	Actor        string
}

// Update modifica nombre, categoría y bandera de perecedero con estampa de edición.
func (uc *ProductUseCase) Update(in UpdateProductInput) error {
	name := strings.TrimSpace(in.Name)
	if in.ID == "" || name == "" || in.Actor == "" {
		return domain.ErrInvalidInput
	}
	category, err := entity.ParseCategory(in.Category)
	if err != nil {
		return err
	}
	product, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return err
	}
	if product == nil || product.IsDeleted {
		return domain.ErrNotFound
	}
	product.Name = name
	product.Category = category
	product.IsPerishable = in.IsPerishable
	product.TouchModified(in.Actor, time.Now())
	return uc.repo.Update(product)
}

// Delete marca el producto como borrado (soft delete). La fila y su historial
// de lotes permanecen.
func (uc *ProductUseCase) Delete(id, actor string) error {
	if id == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id, actor, time.Now())
}
