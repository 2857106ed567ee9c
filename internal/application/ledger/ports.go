package ledger

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de stock:
// la secuencia leer-verificar-descontar de una salida FIFO ocurre completa
// dentro de una sola transacción con bloqueo de filas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}
