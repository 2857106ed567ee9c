// Package ledger implementa el caso de uso del motor de stock: entradas por
// lote, salidas FIFO atómicas y consultas de stock derivado.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	domledger "github.com/jhoicas/almacen/internal/domain/ledger"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// StockLedgerUseCase registra entradas y salidas de stock de forma transaccional.
// Las lecturas (GetTotalStock, GetAllActiveBatches) usan el repositorio atado al
// pool; las mutaciones corren dentro de TxRunner con bloqueo de fila.
type StockLedgerUseCase struct {
	txRunner  TxRunner
	batchRepo repository.BatchRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, batchRepo repository.BatchRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, batchRepo: batchRepo}
}

// EntryInput entrada para RegisterEntry (una compra = un lote nuevo).
type EntryInput struct {
	ProductID      string
	SupplierID     string
	Quantity       int64
	UnitCost       decimal.Decimal
	EntryDate      time.Time
	ExpirationDate *time.Time
	Actor          string
}

// ExitInput entrada para RegisterExit (una venta).
type ExitInput struct {
	ProductID string
	Quantity  int64
	Actor     string
}

// RegisterEntry registra una compra creando un lote NUEVO: nunca se modifica un
// lote existente, siempre se agrega historia. Valida dentro del motor (no en la
// capa de presentación) que:
//   - la cantidad sea > 0 y el costo unitario >= 0,
//   - el producto exista y no esté borrado,
//   - el proveedor exista y no esté borrado (invariante referencial),
//   - si el producto es perecedero, la fecha de caducidad exista y sea
//     estrictamente posterior a la fecha de entrada.
//
// Devuelve el ID del lote creado.
func (uc *StockLedgerUseCase) RegisterEntry(ctx context.Context, in EntryInput) (string, error) {
	if in.Quantity <= 0 || in.UnitCost.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.SupplierID == "" || in.Actor == "" {
		return "", domain.ErrInvalidInput
	}
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	batchID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.IsDeleted {
			return domain.ErrNotFound
		}
		supplier, err := supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil || supplier.IsDeleted {
			return domain.ErrNotFound
		}
		if product.IsPerishable {
			if in.ExpirationDate == nil || !in.ExpirationDate.After(entryDate) {
				return domain.ErrInvalidInput
			}
		}

		batch := &entity.Batch{
			ProductID:      in.ProductID,
			SupplierID:     in.SupplierID,
			Quantity:       in.Quantity,
			UnitCost:       in.UnitCost,
			EntryDate:      entryDate,
			ExpirationDate: in.ExpirationDate,
		}
		batch.ID = batchID
		batch.TouchCreated(in.Actor, time.Now())
		return batchRepo.Create(batch)
	})
	if err != nil {
		return "", err
	}
	return batchID, nil
}

// RegisterExit ejecuta la salida FIFO: dentro de UNA transacción bloquea los
// lotes candidatos del producto (cantidad > 0, no borrados, ordenados por fecha
// de entrada), verifica suficiencia total ANTES de tocar nada y, si alcanza,
// descuenta del lote más viejo hacia el más nuevo. Si el total no cubre la
// solicitud devuelve InsufficientStockError y ninguna fila queda modificada
// (rollback). Cantidad 0 o negativa se rechaza como validación.
func (uc *StockLedgerUseCase) RegisterExit(ctx context.Context, in ExitInput) error {
	if in.Quantity <= 0 || in.ProductID == "" || in.Actor == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		_ repository.SupplierRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.IsDeleted {
			return domain.ErrNotFound
		}

		// SELECT ... FOR UPDATE: nadie más descuenta estos lotes hasta el commit.
		batches, err := batchRepo.ListActiveByProduct(in.ProductID, true)
		if err != nil {
			return err
		}
		plan, err := domledger.PlanWithdrawal(batches, in.Quantity)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, d := range plan {
			if err := batchRepo.UpdateQuantity(d.BatchID, d.Remaining, in.Actor, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetTotalStock devuelve el stock total de un producto sumando sus lotes no
// borrados. 0 para productos sin lotes (no es error). Lectura pura.
func (uc *StockLedgerUseCase) GetTotalStock(ctx context.Context, productID string) (int64, error) {
	if productID == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.batchRepo.SumQuantityByProduct(productID)
}

// GetAllActiveBatches devuelve todos los lotes con stock positivo de todos los
// productos, ordenados por producto y antigüedad, para reportes.
func (uc *StockLedgerUseCase) GetAllActiveBatches(ctx context.Context) ([]*entity.Batch, error) {
	return uc.batchRepo.ListActive()
}
