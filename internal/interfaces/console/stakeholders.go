package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// stakeholderMenu módulo de terceros: proveedores y clientes.
func (c *Console) stakeholderMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- TERCEROS ---")
		fmt.Fprintln(c.out, "[1] Proveedores")
		fmt.Fprintln(c.out, "[2] Clientes")
		fmt.Fprintln(c.out, "[3] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			c.supplierMenu()
		case "2":
			c.customerMenu()
		case "3":
			return
		}
	}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (c *Console) supplierMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- PROVEEDORES ---")
		list, err := c.stakeholders.GetAllSuppliers(false)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		c.renderSuppliers(list)

		fmt.Fprintln(c.out, "\n[1] Nuevo Proveedor")
		fmt.Fprintln(c.out, "[2] Editar")
		fmt.Fprintln(c.out, "[3] Eliminar")
		fmt.Fprintln(c.out, "[4] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			name := c.prompt.ReadLine("Nombre: ")
			email := c.prompt.ReadLine("Email: ")
			if _, err := c.stakeholders.CreateSupplier(name, email, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Proveedor creado.")
			}
		case "2":
			s := c.chooseSupplier(list)
			if s == nil {
				continue
			}
			name := c.prompt.ReadLine(fmt.Sprintf("Nombre [%s]: ", s.Name))
			if name == "" {
				name = s.Name
			}
			email := c.prompt.ReadLine(fmt.Sprintf("Email [%s]: ", s.ContactEmail))
			if email == "" {
				email = s.ContactEmail
			}
			if err := c.stakeholders.UpdateSupplier(s.ID, name, email, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Proveedor actualizado.")
			}
		case "3":
			s := c.chooseSupplier(list)
			if s == nil {
				continue
			}
			if !c.prompt.ReadYesNo(fmt.Sprintf("¿Borrar %q? (s/n): ", s.Name)) {
				continue
			}
			if err := c.stakeholders.DeleteSupplier(s.ID, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Proveedor eliminado (borrado lógico).")
			}
		case "4":
			return
		}
	}
}

func (c *Console) renderSuppliers(list []*entity.Supplier) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "      (No hay proveedores registrados)")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNOMBRE\tEMAIL")
	for i, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, shortID(s.ID), truncate(s.Name, 24), s.ContactEmail)
	}
	w.Flush()
}

func (c *Console) chooseSupplier(list []*entity.Supplier) *entity.Supplier {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No hay proveedores registrados.")
		return nil
	}
	n := c.prompt.ReadInt64(fmt.Sprintf("Número de proveedor (1-%d): ", len(list)))
	if n < 1 || n > int64(len(list)) {
		fmt.Fprintln(c.out, "❌ Número fuera de rango.")
		return nil
	}
	return list[n-1]
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (c *Console) customerMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- CLIENTES ---")
		list, err := c.stakeholders.GetAllCustomers(false)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		c.renderCustomers(list)

		fmt.Fprintln(c.out, "\n[1] Nuevo Cliente")
		fmt.Fprintln(c.out, "[2] Editar")
		fmt.Fprintln(c.out, "[3] Eliminar")
		fmt.Fprintln(c.out, "[4] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			name := c.prompt.ReadLine("Nombre: ")
			taxID := c.prompt.ReadLine("NIT/CC: ")
			if _, err := c.stakeholders.CreateCustomer(name, taxID, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Cliente creado.")
			}
		case "2":
			cu := c.chooseCustomer(list)
			if cu == nil {
				continue
			}
			name := c.prompt.ReadLine(fmt.Sprintf("Nombre [%s]: ", cu.Name))
			if name == "" {
				name = cu.Name
			}
			taxID := c.prompt.ReadLine(fmt.Sprintf("NIT/CC [%s]: ", cu.TaxID))
			if taxID == "" {
				taxID = cu.TaxID
			}
			if err := c.stakeholders.UpdateCustomer(cu.ID, name, taxID, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Cliente actualizado.")
			}
		case "3":
			cu := c.chooseCustomer(list)
			if cu == nil {
				continue
			}
			if !c.prompt.ReadYesNo(fmt.Sprintf("¿Borrar %q? (s/n): ", cu.Name)) {
				continue
			}
			if err := c.stakeholders.DeleteCustomer(cu.ID, c.session.Actor()); err != nil {
				fmt.Fprintln(c.out, friendlyError(err))
			} else {
				fmt.Fprintln(c.out, "✅ Cliente eliminado (borrado lógico).")
			}
		case "4":
			return
		}
	}
}

func (c *Console) renderCustomers(list []*entity.Customer) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "      (No hay clientes registrados)")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNOMBRE\tNIT/CC")
	for i, cu := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, shortID(cu.ID), truncate(cu.Name, 24), cu.TaxID)
	}
	w.Flush()
}

func (c *Console) chooseCustomer(list []*entity.Customer) *entity.Customer {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No hay clientes registrados.")
		return nil
	}
	n := c.prompt.ReadInt64(fmt.Sprintf("Número de cliente (1-%d): ", len(list)))
	if n < 1 || n > int64(len(list)) {
		fmt.Fprintln(c.out, "❌ Número fuera de rango.")
		return nil
	}
	return list[n-1]
}
