package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/almacen/internal/application/ledger"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// inventoryMenu módulo de movimientos: el núcleo FIFO.
func (c *Console) inventoryMenu(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\n--- RESUMEN DE STOCK ACTUAL ---")
		prods, err := c.products.GetAll(false)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		c.renderStockSummary(ctx, prods)

		fmt.Fprintln(c.out, "\nACCIONES DE INVENTARIO:")
		fmt.Fprintln(c.out, "[1] REGISTRAR COMPRA (Entrada -> Crea un Lote)")
		fmt.Fprintln(c.out, "[2] REGISTRAR VENTA  (Salida -> Aplica FIFO)")
		fmt.Fprintln(c.out, "[3] VER DETALLE DE LOTES (Costos y Fechas)")
		fmt.Fprintln(c.out, "[4] EXPORTAR REPORTE PDF")
		fmt.Fprintln(c.out, "[5] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			c.registerPurchase(ctx, prods)
		case "2":
			c.registerSale(ctx, prods)
		case "3":
			c.showBatchDetail(ctx, prods)
		case "4":
			c.exportStockReport(ctx)
		case "5":
			return
		}
	}
}

// renderStockSummary pinta el stock total por producto. El total no se lee de
// un campo de la tabla de productos: se suma sobre los lotes vivos en el
// momento de la consulta.
func (c *Console) renderStockSummary(ctx context.Context, prods []*entity.Product) {
	if len(prods) == 0 {
		fmt.Fprintln(c.out, "      (El catálogo está vacío)")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCTO\tSKU\tSTOCK TOTAL")
	for i, p := range prods {
		total, err := c.stock.GetTotalStock(ctx, p.ID)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		marker := ""
		if total == 0 {
			marker = "  ⚠ sin stock"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d%s\n", i+1, truncate(p.Name, 24), p.SKU, total, marker)
	}
	w.Flush()
}

func (c *Console) registerPurchase(ctx context.Context, prods []*entity.Product) {
	if len(prods) == 0 {
		fmt.Fprintln(c.out, "⚠ Primero cree productos en el catálogo.")
		return
	}
	suppliers, err := c.stakeholders.GetAllSuppliers(false)
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(c.out, "⚠ No hay proveedores. Registre uno en el módulo de terceros.")
		return
	}

	fmt.Fprintln(c.out, "\n--- NUEVA COMPRA ---")
	fmt.Fprintln(c.out, "Proveedores disponibles:")
	c.renderSuppliers(suppliers)
	supplier := c.chooseSupplier(suppliers)
	if supplier == nil {
		return
	}

	fmt.Fprintln(c.out, "Productos:")
	c.renderProducts(prods)
	product := c.chooseProduct(prods)
	if product == nil {
		return
	}

	qty := c.prompt.ReadInt64("Cantidad a ingresar: ")
	cost := c.prompt.ReadDecimal("Costo unitario ($): ")
	entryDate := time.Now()

	var expiration *time.Time
	if product.IsPerishable {
		fmt.Fprintln(c.out, "⚠ PRODUCTO PERECEDERO: fecha de caducidad obligatoria.")
		for expiration == nil {
			d := c.prompt.ReadDate("Fecha de caducidad (yyyy-mm-dd): ")
			if d.IsZero() {
				return
			}
			if !d.After(entryDate) {
				fmt.Fprintln(c.out, "❌ La fecha debe ser posterior a hoy.")
				continue
			}
			expiration = &d
		}
	}

	batchID, err := c.stock.RegisterEntry(ctx, ledger.EntryInput{
		ProductID:      product.ID,
		SupplierID:     supplier.ID,
		Quantity:       qty,
		UnitCost:       cost,
		EntryDate:      entryDate,
		ExpirationDate: expiration,
		Actor:          c.session.Actor(),
	})
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintf(c.out, "✅ Compra registrada (lote %s).\n", shortID(batchID))
}

func (c *Console) registerSale(ctx context.Context, prods []*entity.Product) {
	fmt.Fprintln(c.out, "\n--- VENTA ---")
	product := c.chooseProduct(prods)
	if product == nil {
		return
	}

	current, err := c.stock.GetTotalStock(ctx, product.ID)
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	if current == 0 {
		fmt.Fprintln(c.out, "❌ No hay stock disponible.")
		return
	}

	qty := c.prompt.ReadInt64(fmt.Sprintf("Cantidad (máx %d): ", current))
	err = c.stock.RegisterExit(ctx, ledger.ExitInput{
		ProductID: product.ID,
		Quantity:  qty,
		Actor:     c.session.Actor(),
	})
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Venta registrada (FIFO aplicado).")
}

func (c *Console) showBatchDetail(ctx context.Context, prods []*entity.Product) {
	fmt.Fprintln(c.out, "\n--- DETALLE DE LOTES ACTIVOS ---")
	batches, err := c.stock.GetAllActiveBatches(ctx)
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	if len(batches) == 0 {
		fmt.Fprintln(c.out, "      (No hay lotes activos)")
		c.prompt.Pause()
		return
	}

	names := make(map[string]string, len(prods))
	for _, p := range prods {
		names[p.ID] = p.Name
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOTE\tPRODUCTO\tCANT.\tCOSTO U.\tINGRESO\tCADUCIDAD")
	for _, b := range batches {
		name, ok := names[b.ProductID]
		if !ok {
			name = "???"
		}
		exp := "-"
		if b.ExpirationDate != nil {
			exp = b.ExpirationDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t$%s\t%s\t%s\n",
			shortID(b.ID), truncate(name, 18), b.Quantity,
			b.UnitCost.StringFixed(2), b.EntryDate.Format("2006-01-02"), exp)
	}
	w.Flush()
	c.prompt.Pause()
}

func (c *Console) exportStockReport(ctx context.Context) {
	pdfBytes, err := c.reports.Generate(ctx, c.session.Actor())
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}

	name := fmt.Sprintf("stock_%s.pdf", time.Now().Format("20060102_150405"))
	path := filepath.Join(c.reportDir, name)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		fmt.Fprintln(c.out, "❌ No se pudo escribir el archivo: "+err.Error())
		return
	}

	c.log.Info().Str("path", path).Int("bytes", len(pdfBytes)).Msg("reporte de stock exportado")
	fmt.Fprintf(c.out, "✅ Reporte generado: %s\n", path)
}
