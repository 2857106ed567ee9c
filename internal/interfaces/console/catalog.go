package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// catalogMenu módulo de productos: listado y CRUD del catálogo.
func (c *Console) catalogMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- CATÁLOGO DE PRODUCTOS ---")
		list, err := c.products.GetAll(false)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		c.renderProducts(list)

		fmt.Fprintln(c.out, "\n[1] Nuevo Producto")
		fmt.Fprintln(c.out, "[2] Editar Producto")
		fmt.Fprintln(c.out, "[3] Eliminar Producto")
		fmt.Fprintln(c.out, "[4] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			c.createProduct()
		case "2":
			c.editProduct(list)
		case "3":
			c.deleteProduct(list)
		case "4":
			return
		}
	}
}

func (c *Console) renderProducts(list []*entity.Product) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "      (El catálogo está vacío)")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNOMBRE\tSKU\tCATEGORÍA\tPERECEDERO")
	for i, p := range list {
		per := "no"
		if p.IsPerishable {
			per = "sí"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, shortID(p.ID), truncate(p.Name, 24), p.SKU, p.Category, per)
	}
	w.Flush()
}

// chooseProduct pide el número de fila y devuelve el producto elegido.
func (c *Console) chooseProduct(list []*entity.Product) *entity.Product {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No hay productos registrados.")
		return nil
	}
	n := c.prompt.ReadInt64(fmt.Sprintf("Número de producto (1-%d): ", len(list)))
	if n < 1 || n > int64(len(list)) {
		fmt.Fprintln(c.out, "❌ Número fuera de rango.")
		return nil
	}
	return list[n-1]
}

func (c *Console) createProduct() {
	fmt.Fprintln(c.out, "\n--- NUEVO PRODUCTO ---")
	name := c.prompt.ReadLine("Nombre: ")
	sku := c.prompt.ReadLine("SKU (código único): ")

	fmt.Fprintln(c.out, "Categoría: [1] Alimentos  [2] Electrónica  [3] General")
	var category string
	switch c.prompt.ReadLine("Opción: ") {
	case "2":
		category = entity.CategoryElectronics
	case "3":
		category = entity.CategoryGeneral
	default:
		category = entity.CategoryGroceries
	}
	perishable := c.prompt.ReadYesNo("¿Es perecedero? (s/n): ")

	_, err := c.products.Create(usecase.CreateProductInput{
		Name:         name,
		SKU:          sku,
		Category:     category,
		IsPerishable: perishable,
		Actor:        c.session.Actor(),
	})
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Producto creado.")
}

func (c *Console) editProduct(list []*entity.Product) {
	p := c.chooseProduct(list)
	if p == nil {
		return
	}

	name := c.prompt.ReadLine(fmt.Sprintf("Nombre [%s]: ", p.Name))
	if name == "" {
		name = p.Name
	}
	fmt.Fprintf(c.out, "Categoría [%s]: [1] Alimentos  [2] Electrónica  [3] General  [Enter] mantener\n", p.Category)
	category := p.Category
	switch c.prompt.ReadLine("Opción: ") {
	case "1":
		category = entity.CategoryGroceries
	case "2":
		category = entity.CategoryElectronics
	case "3":
		category = entity.CategoryGeneral
	}
	perishable := c.prompt.ReadYesNo(fmt.Sprintf("¿Es perecedero? (s/n) [%v]: ", p.IsPerishable))

	err := c.products.Update(usecase.UpdateProductInput{
		ID:           p.ID,
		Name:         name,
		Category:     category,
		IsPerishable: perishable,
		Actor:        c.session.Actor(),
	})
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Producto actualizado.")
}

func (c *Console) deleteProduct(list []*entity.Product) {
	p := c.chooseProduct(list)
	if p == nil {
		return
	}
	if !c.prompt.ReadYesNo(fmt.Sprintf("¿Borrar %q? (s/n): ", p.Name)) {
		return
	}
	if err := c.products.Delete(p.ID, c.session.Actor()); err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Producto eliminado (borrado lógico).")
}
