package repository

import (
	"time"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes. El motor de stock
// es el único que muta lotes; las mutaciones ocurren dentro de una transacción
// (repositorio atado a la tx vía TxRunner).
type BatchRepository interface {
	Create(batch *entity.Batch) error
	// GetByID devuelve el lote aunque esté borrado lógicamente (la traza de
	// auditoría sigue siendo consultable por búsqueda directa).
	GetByID(id string) (*entity.Batch, error)
	// ListActiveByProduct devuelve los lotes candidatos a FIFO de un producto:
	// cantidad > 0 y no borrados, ordenados por entry_date asc, id asc.
	// forUpdate bloquea las filas (SELECT ... FOR UPDATE) dentro de una tx.
	ListActiveByProduct(productID string, forUpdate bool) ([]*entity.Batch, error)
	// ListActive devuelve todos los lotes con cantidad > 0 de todos los
	// productos, ordenados por product_id asc, entry_date asc, id asc.
	ListActive() ([]*entity.Batch, error)
	// SumQuantityByProduct suma la cantidad de los lotes no borrados del
	// producto; 0 si no tiene lotes.
	SumQuantityByProduct(productID string) (int64, error)
	// UpdateQuantity persiste la nueva cantidad de un lote con su estampa de
	// modificación. La cantidad solo baja; el resto del lote es inmutable.
	UpdateQuantity(id string, quantity int64, actor string, now time.Time) error
	SoftDelete(id, actor string, now time.Time) error
}
