package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/almacen/internal/application/ledger"
	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/pkg/logger"
)

// Console conecta los menús con los casos de uso.
type Console struct {
	products     *usecase.ProductUseCase
	stakeholders *usecase.StakeholderUseCase
	users        *usecase.UserUseCase
	stock        *ledger.StockLedgerUseCase
	reports      *report.StockReportUseCase

	session   *Session
	prompt    *Prompter
	out       io.Writer
	log       *logger.Logger
	reportDir string
}

// New construye la consola.
func New(
	products *usecase.ProductUseCase,
	stakeholders *usecase.StakeholderUseCase,
	users *usecase.UserUseCase,
	stock *ledger.StockLedgerUseCase,
	reports *report.StockReportUseCase,
	prompt *Prompter,
	out io.Writer,
	log *logger.Logger,
	reportDir string,
) *Console {
	return &Console{
		products:     products,
		stakeholders: stakeholders,
		users:        users,
		stock:        stock,
		reports:      reports,
		session:      &Session{},
		prompt:       prompt,
		out:          out,
		log:          log,
		reportDir:    reportDir,
	}
}

// Run ejecuta el ciclo de vida de la aplicación: login obligatorio y menú
// principal hasta que el usuario salga. ctx cancela el ciclo entre pantallas.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.session.Clear()
		for !c.session.Active() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if quit := c.loginScreen(); quit {
				return nil
			}
		}

		c.log.Info().
			Str("username", c.session.Actor()).
			Str("role", c.session.Role()).
			Msg("sesión iniciada")

		c.mainMenu(ctx)

		c.log.Info().Str("username", c.session.Actor()).Msg("sesión cerrada")
	}
}

// loginScreen pide credenciales; true si el usuario pidió salir del programa.
func (c *Console) loginScreen() bool {
	fmt.Fprintln(c.out, "\n=== INICIO DE SESIÓN ===")
	fmt.Fprintln(c.out, "(usuario vacío para salir del programa)")

	username := c.prompt.ReadLine("Usuario: ")
	if username == "" {
		return true
	}
	password := c.prompt.ReadLine("Password: ")

	user, err := c.users.Login(username, password)
	if err != nil {
		fmt.Fprintln(c.out, friendlyError(err))
		return false
	}
	c.session.SetUser(user)
	return false
}

func (c *Console) mainMenu(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintln(c.out, "\n=== SISTEMA DE INVENTARIO ===")
		fmt.Fprintf(c.out, "Usuario Activo: %s (Rol: %s)\n", c.session.Actor(), c.session.Role())
		fmt.Fprintln(c.out, "-----------------------------")
		fmt.Fprintln(c.out, "1. PRODUCTOS (Gestión del Catálogo)")
		fmt.Fprintln(c.out, "2. TERCEROS (Proveedores y Clientes)")
		fmt.Fprintln(c.out, "3. MOVIMIENTOS (Compras y Ventas - FIFO)")
		if c.session.IsAdmin() {
			fmt.Fprintln(c.out, "4. USUARIOS (Administración)")
		}
		fmt.Fprintln(c.out, "5. Salir (Cerrar Sesión)")

		switch c.prompt.ReadLine("\nSeleccione una opción: ") {
		case "1":
			c.catalogMenu()
		case "2":
			c.stakeholderMenu()
		case "3":
			c.inventoryMenu(ctx)
		case "4":
			// El rol se revalida aquí: la opción oculta no basta como control.
			if c.session.IsAdmin() {
				c.userMenu()
			}
		case "5":
			return
		}
	}
}

// friendlyError traduce errores de dominio a mensajes de usuario.
func friendlyError(err error) string {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("❌ Stock insuficiente: disponibles %d, solicitadas %d (faltan %d).",
			insufficient.Available, insufficient.Requested, insufficient.Shortfall())
	case errors.Is(err, domain.ErrUnauthorized):
		return "❌ Credenciales incorrectas."
	case errors.Is(err, domain.ErrDuplicate):
		return "❌ Ya existe un registro con ese identificador."
	case errors.Is(err, domain.ErrNotFound):
		return "❌ Registro no encontrado."
	case errors.Is(err, domain.ErrInvalidInput):
		return "❌ Datos inválidos, revise los valores ingresados."
	default:
		return "❌ Error: " + err.Error()
	}
}

// truncate corta textos largos para no romper las tablas.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// shortID muestra el prefijo de un UUID; suficiente para elegir en pantalla.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return truncate(id, 8)
}
