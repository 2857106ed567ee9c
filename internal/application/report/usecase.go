// Package report arma el reporte de lotes activos (stock detallado por
// producto) y delega su render a un generador (PDF vía Maroto).
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/application/ledger"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// Line una fila del reporte: un lote activo con los nombres ya resueltos.
type Line struct {
	ProductName    string
	SKU            string
	SupplierName   string
	Quantity       int64
	UnitCost       decimal.Decimal
	EntryDate      time.Time
	ExpirationDate *time.Time
}

// Meta metadatos del reporte.
type Meta struct {
	GeneratedAt time.Time
	GeneratedBy string
	TotalUnits  int64
}

// StockReportGenerator puerta de salida para el render del reporte.
type StockReportGenerator interface {
	GenerateStockReport(lines []Line, meta Meta) ([]byte, error)
}

// StockReportUseCase arma el reporte de lotes activos.
type StockReportUseCase struct {
	ledger    *ledger.StockLedgerUseCase
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	generator StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	ledgerUC *ledger.StockLedgerUseCase,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{ledger: ledgerUC, products: products, suppliers: suppliers, generator: generator}
}

// Generate toma los lotes activos (ya ordenados por producto y antigüedad),
// resuelve nombres de producto y proveedor y produce los bytes del PDF.
// Los nombres se resuelven incluso para filas borradas: el historial de un lote
// no pierde legibilidad porque su proveedor haya sido dado de baja.
func (uc *StockReportUseCase) Generate(ctx context.Context, actor string) ([]byte, error) {
	batches, err := uc.ledger.GetAllActiveBatches(ctx)
	if err != nil {
		return nil, err
	}

	productNames := make(map[string][2]string) // id -> {name, sku}
	supplierNames := make(map[string]string)

	lines := make([]Line, 0, len(batches))
	var totalUnits int64
	for _, b := range batches {
		names, ok := productNames[b.ProductID]
		if !ok {
			p, err := uc.products.GetByID(b.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				names = [2]string{p.Name, p.SKU}
			}
			productNames[b.ProductID] = names
		}
		supplierName, ok := supplierNames[b.SupplierID]
		if !ok {
			s, err := uc.suppliers.GetByID(b.SupplierID)
			if err != nil {
				return nil, err
			}
			if s != nil {
				supplierName = s.Name
			}
			supplierNames[b.SupplierID] = supplierName
		}

		lines = append(lines, Line{
			ProductName:    names[0],
			SKU:            names[1],
			SupplierName:   supplierName,
			Quantity:       b.Quantity,
			UnitCost:       b.UnitCost,
			EntryDate:      b.EntryDate,
			ExpirationDate: b.ExpirationDate,
		})
		totalUnits += b.Quantity
	}

	return uc.generator.GenerateStockReport(lines, Meta{
		GeneratedAt: time.Now(),
		GeneratedBy: actor,
		TotalUnits:  totalUnits,
	})
}
