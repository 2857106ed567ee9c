package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// userMenu módulo de administración de usuarios. Solo accesible para Admin;
// el llamador revalida el rol antes de entrar.
func (c *Console) userMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- USUARIOS ---")
		list, err := c.users.GetAll(false)
		if err != nil {
			fmt.Fprintln(c.out, friendlyError(err))
			return
		}
		c.renderUsers(list)

		fmt.Fprintln(c.out, "\n[1] Crear Operario")
		fmt.Fprintln(c.out, "[2] Crear Administrador")
		fmt.Fprintln(c.out, "[3] Cambiar Password")
		fmt.Fprintln(c.out, "[4] Eliminar Usuario")
		fmt.Fprintln(c.out, "[5] Volver")

		switch c.prompt.ReadLine("Opción: ") {
		case "1":
			c.createUser(entity.RoleOperator)
		case "2":
			c.createUser(entity.RoleAdmin)
		case "3":
			c.changePassword(list)
		case "4":
			c.deleteUser(list)
		case "5":
			return
		}
	}
}

func (c *Console) renderUsers(list []*entity.User) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tUSUARIO\tROL")
	for i, u := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, shortID(u.ID), u.Username, u.Role)
	}
	w.Flush()
}

func (c *Console) chooseUser(list []*entity.User) *entity.User {
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No hay usuarios registrados.")
		return nil
	}
	n := c.prompt.ReadInt64(fmt.Sprintf("Número de usuario (1-%d): ", len(list)))
	if n < 1 || n > int64(len(list)) {
		fmt.Fprintln(c.out, "❌ Número fuera de rango.")
		return nil
	}
	return list[n-1]
}

func (c *Console) createUser(role string) {
	username := c.prompt.ReadLine("Usuario: ")
	password := c.prompt.ReadLine("Password: ")
	if _, err := c.users.Register(username, password, role, c.session.Actor()); err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintf(c.out, "✅ Usuario creado con rol %s.\n", role)
}

func (c *Console) changePassword(list []*entity.User) {
	u := c.chooseUser(list)
	if u == nil {
		return
	}
	password := c.prompt.ReadLine("Nuevo password: ")
	if err := c.users.UpdatePassword(u.ID, password, c.session.Actor()); err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Password actualizado.")
}

func (c *Console) deleteUser(list []*entity.User) {
	u := c.chooseUser(list)
	if u == nil {
		return
	}
	if u.Username == c.session.Actor() {
		fmt.Fprintln(c.out, "❌ No puede eliminar su propia sesión.")
		return
	}
	if !c.prompt.ReadYesNo(fmt.Sprintf("¿Borrar a %q? (s/n): ", u.Username)) {
		return
	}
	if err := c.users.Delete(u.ID, c.session.Actor()); err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Usuario eliminado (borrado lógico).")
}
