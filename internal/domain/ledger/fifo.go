// Package ledger contiene el servicio de dominio del motor de stock: la
// planificación FIFO de una salida sobre los lotes de un producto.
package ledger

import (
	"sort"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// Deduction indica cuánto descontar de un lote concreto al ejecutar una salida.
type Deduction struct {
	BatchID   string
	Deduct    int64
	Remaining int64 // cantidad que queda en el lote tras el descuento
}

// TotalQuantity suma las cantidades de los lotes candidatos.
func TotalQuantity(batches []*entity.Batch) int64 {
	var total int64
	for _, b := range batches {
		total += b.Quantity
	}
	return total
}

// SortFIFO ordena los lotes por fecha de entrada ascendente; a igual fecha,
// por ID ascendente para que el plan sea determinista.
func SortFIFO(batches []*entity.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		if batches[i].EntryDate.Equal(batches[j].EntryDate) {
			return batches[i].ID < batches[j].ID
		}
		return batches[i].EntryDate.Before(batches[j].EntryDate)
	})
}

// PlanWithdrawal calcula el plan FIFO para descontar `required` unidades de los
// lotes candidatos (activos, con cantidad > 0). No muta nada: la verificación de
// suficiencia ocurre completa ANTES de producir descuento alguno, de modo que una
// salida imposible no deja efecto observable.
//
// Recorre los lotes del más viejo al más nuevo descontando
// min(lote.Quantity, faltante) hasta satisfacer la demanda; los lotes posteriores
// al que la satisface no aparecen en el plan.
func PlanWithdrawal(batches []*entity.Batch, required int64) ([]Deduction, error) {
	if required <= 0 {
		return nil, domain.ErrInvalidInput
	}
	SortFIFO(batches)

	total := TotalQuantity(batches)
	if total < required {
		return nil, &domain.InsufficientStockError{Available: total, Requested: required}
	}

	plan := make([]Deduction, 0, len(batches))
	remaining := required
	for _, b := range batches {
		if remaining == 0 {
			break
		}
		deduct := b.Quantity
		if deduct > remaining {
			deduct = remaining
		}
		plan = append(plan, Deduction{
			BatchID:   b.ID,
			Deduct:    deduct,
			Remaining: b.Quantity - deduct,
		})
		remaining -= deduct
	}
	return plan, nil
}
