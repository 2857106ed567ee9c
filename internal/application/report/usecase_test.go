package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/ledger"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeBatchRepo struct {
	active []*entity.Batch
}

func (r *fakeBatchRepo) Create(*entity.Batch) error                 { return nil }
func (r *fakeBatchRepo) GetByID(string) (*entity.Batch, error)      { return nil, nil }
func (r *fakeBatchRepo) ListActive() ([]*entity.Batch, error)       { return r.active, nil }
func (r *fakeBatchRepo) SumQuantityByProduct(string) (int64, error) { return 0, nil }
func (r *fakeBatchRepo) ListActiveByProduct(string, bool) ([]*entity.Batch, error) {
	return nil, nil
}
func (r *fakeBatchRepo) UpdateQuantity(string, int64, string, time.Time) error { return nil }
func (r *fakeBatchRepo) SoftDelete(string, string, time.Time) error            { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) GetAll(bool) ([]*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error               { return nil }
func (r *fakeProductRepo) SoftDelete(string, string, time.Time) error { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
	calls     int
}

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.calls++
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) GetAll(bool) ([]*entity.Supplier, error)    { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error              { return nil }
func (r *fakeSupplierRepo) SoftDelete(string, string, time.Time) error { return nil }

type captureGenerator struct {
	lines []Line
	meta  Meta
}

func (g *captureGenerator) GenerateStockReport(lines []Line, meta Meta) ([]byte, error) {
	g.lines = lines
	g.meta = meta
	return []byte("%PDF"), nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// Verifica que el reporte resuelva nombres de producto y proveedor por lote,
// conserve el orden del repositorio y acumule el total de unidades.
func TestStockReport_Generate(t *testing.T) {
	entry := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	caduca := entry.AddDate(0, 6, 0)

	batches := []*entity.Batch{
		{
			Auditable:  entity.Auditable{ID: "b1"},
			ProductID:  "p1",
			SupplierID: "s1",
			Quantity:   10,
			UnitCost:   decimal.NewFromFloat(2.50),
			EntryDate:  entry,
		},
		{
			Auditable:      entity.Auditable{ID: "b2"},
			ProductID:      "p1",
			SupplierID:     "s1",
			Quantity:       4,
			UnitCost:       decimal.NewFromFloat(2.75),
			EntryDate:      entry.AddDate(0, 0, 5),
			ExpirationDate: &caduca,
		},
		{
			Auditable:  entity.Auditable{ID: "b3"},
			ProductID:  "p2",
			SupplierID: "s2",
			Quantity:   7,
			UnitCost:   decimal.NewFromInt(120),
			EntryDate:  entry.AddDate(0, 0, 2),
		},
	}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {Auditable: entity.Auditable{ID: "p1"}, Name: "Arroz", SKU: "GRO-001"},
		"p2": {Auditable: entity.Auditable{ID: "p2"}, Name: "Taladro", SKU: "ELE-010"},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {Auditable: entity.Auditable{ID: "s1"}, Name: "Distribuidora Norte"},
		"s2": {Auditable: entity.Auditable{ID: "s2"}, Name: "Herramientas SA"},
	}}

	ledgerUC := ledger.NewStockLedgerUseCase(nil, &fakeBatchRepo{active: batches})
	gen := &captureGenerator{}
	uc := NewStockReportUseCase(ledgerUC, products, suppliers, gen)

	pdfBytes, err := uc.Generate(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdfBytes)

	require.Len(t, gen.lines, 3)
	assert.Equal(t, "Arroz", gen.lines[0].ProductName)
	assert.Equal(t, "GRO-001", gen.lines[0].SKU)
	assert.Equal(t, "Distribuidora Norte", gen.lines[0].SupplierName)
	assert.Nil(t, gen.lines[0].ExpirationDate)
	require.NotNil(t, gen.lines[1].ExpirationDate)
	assert.Equal(t, caduca, *gen.lines[1].ExpirationDate)
	assert.Equal(t, "Taladro", gen.lines[2].ProductName)

	assert.Equal(t, int64(21), gen.meta.TotalUnits)
	assert.Equal(t, "admin", gen.meta.GeneratedBy)
	assert.False(t, gen.meta.GeneratedAt.IsZero())

	// Los nombres se resuelven una sola vez por proveedor.
	assert.Equal(t, 2, suppliers.calls)
}

// Sin lotes activos el reporte sale vacío pero válido.
func TestStockReport_SinLotes(t *testing.T) {
	ledgerUC := ledger.NewStockLedgerUseCase(nil, &fakeBatchRepo{})
	gen := &captureGenerator{}
	uc := NewStockReportUseCase(ledgerUC, &fakeProductRepo{}, &fakeSupplierRepo{}, gen)

	_, err := uc.Generate(context.Background(), "admin")
	require.NoError(t, err)
	assert.Empty(t, gen.lines)
	assert.Zero(t, gen.meta.TotalUnits)
}
