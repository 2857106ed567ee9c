package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func batch(id string, qty int64, entry time.Time) *entity.Batch {
	b := &entity.Batch{Quantity: qty, EntryDate: entry}
	b.ID = id
	return b
}

// TestPlanWithdrawal_OrdenFIFO verifica que una salida de 7 sobre B1(qty=5, t1)
// y B2(qty=5, t2>t1) agota B1 y toma 2 de B2.
func TestPlanWithdrawal_OrdenFIFO(t *testing.T) {
	batches := []*entity.Batch{
		batch("b2", 5, base.Add(time.Hour)),
		batch("b1", 5, base),
	}

	plan, err := ledger.PlanWithdrawal(batches, 7)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, "b1", plan[0].BatchID)
	assert.Equal(t, int64(5), plan[0].Deduct)
	assert.Equal(t, int64(0), plan[0].Remaining)

	assert.Equal(t, "b2", plan[1].BatchID)
	assert.Equal(t, int64(2), plan[1].Deduct)
	assert.Equal(t, int64(3), plan[1].Remaining)
}

// TestPlanWithdrawal_LoteSatisfaciente verifica que los lotes posteriores al que
// satisface la demanda no aparecen en el plan (quedan intactos).
func TestPlanWithdrawal_LoteSatisfaciente(t *testing.T) {
	batches := []*entity.Batch{
		batch("b1", 10, base),
		batch("b2", 4, base.Add(time.Hour)),
		batch("b3", 9, base.Add(2*time.Hour)),
	}

	plan, err := ledger.PlanWithdrawal(batches, 12)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "b1", plan[0].BatchID)
	assert.Equal(t, "b2", plan[1].BatchID)
	assert.Equal(t, int64(2), plan[1].Deduct)
	assert.Equal(t, int64(2), plan[1].Remaining)
}

// TestPlanWithdrawal_StockInsuficiente verifica el todo-o-nada: si el total no
// alcanza, no hay plan y el error lleva disponible/solicitado.
func TestPlanWithdrawal_StockInsuficiente(t *testing.T) {
	batches := []*entity.Batch{
		batch("b1", 3, base),
		batch("b2", 2, base.Add(time.Hour)),
	}

	plan, err := ledger.PlanWithdrawal(batches, 6)
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(5), insufficient.Available)
	assert.Equal(t, int64(6), insufficient.Requested)
	assert.Equal(t, int64(1), insufficient.Shortfall())
}

// TestPlanWithdrawal_AgotamientoExacto verifica que una salida igual al total
// deja todos los lotes en 0, sin residuos.
func TestPlanWithdrawal_AgotamientoExacto(t *testing.T) {
	batches := []*entity.Batch{
		batch("b1", 4, base),
		batch("b2", 6, base.Add(time.Hour)),
	}

	plan, err := ledger.PlanWithdrawal(batches, 10)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	for _, d := range plan {
		assert.Equal(t, int64(0), d.Remaining)
	}
}

// TestPlanWithdrawal_EmpateDeFecha verifica el desempate determinista por ID
// ascendente cuando dos lotes comparten fecha de entrada.
func TestPlanWithdrawal_EmpateDeFecha(t *testing.T) {
	batches := []*entity.Batch{
		batch("bb", 5, base),
		batch("aa", 5, base),
	}

	plan, err := ledger.PlanWithdrawal(batches, 6)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "aa", plan[0].BatchID)
	assert.Equal(t, "bb", plan[1].BatchID)
}

// TestPlanWithdrawal_CantidadInvalida: cero y negativos se rechazan antes de
// tocar nada (decisión documentada: validación, no no-op).
func TestPlanWithdrawal_CantidadInvalida(t *testing.T) {
	batches := []*entity.Batch{batch("b1", 5, base)}

	for _, qty := range []int64{0, -1} {
		plan, err := ledger.PlanWithdrawal(batches, qty)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// TestPlanWithdrawal_SinLotes: sin candidatos, cualquier solicitud positiva
// falla con disponible 0.
func TestPlanWithdrawal_SinLotes(t *testing.T) {
	plan, err := ledger.PlanWithdrawal(nil, 1)
	assert.Nil(t, plan)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(0), insufficient.Available)
}

func TestTotalQuantity(t *testing.T) {
	assert.Equal(t, int64(0), ledger.TotalQuantity(nil))
	assert.Equal(t, int64(9), ledger.TotalQuantity([]*entity.Batch{
		batch("b1", 4, base),
		batch("b2", 5, base),
	}))
}
