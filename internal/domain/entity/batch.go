package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa un LOTE: un ingreso puntual de mercadería para un producto.
// El stock total de un producto es la suma de Quantity de sus lotes activos.
// Quantity solo baja después de la creación (las correcciones se modelan como
// lotes nuevos, nunca como incrementos in situ); un lote en 0 no se borra, solo
// queda fuera de la selección FIFO.
type Batch struct {
	Auditable
	ProductID      string
	SupplierID     string
	Quantity       int64
	UnitCost       decimal.Decimal // costo de compra unitario, inmutable tras crear
	EntryDate      time.Time       // clave de orden FIFO, inmutable
	ExpirationDate *time.Time      // obligatoria si el producto es perecedero
}
