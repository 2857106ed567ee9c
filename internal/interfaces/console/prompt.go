package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Prompter lee entradas de teclado línea a línea y las convierte a los tipos
// que piden los casos de uso. Nunca valida reglas de negocio, solo formato.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter construye el lector sobre la entrada y salida dadas.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine muestra la etiqueta y devuelve la línea tecleada sin espacios de
// borde. EOF devuelve cadena vacía.
func (p *Prompter) ReadLine(label string) string {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// ReadInt64 lee un entero; reintenta hasta obtener formato válido o EOF.
func (p *Prompter) ReadInt64(label string) int64 {
	for {
		raw := p.ReadLine(label)
		if raw == "" {
			return 0
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Formato incorrecto, ingrese un número entero.")
			continue
		}
		return n
	}
}

// ReadDecimal lee un monto decimal; reintenta hasta formato válido o EOF.
func (p *Prompter) ReadDecimal(label string) decimal.Decimal {
	for {
		raw := p.ReadLine(label)
		if raw == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Formato incorrecto, ingrese un monto (ej: 12.50).")
			continue
		}
		return d
	}
}

// ReadYesNo lee una confirmación s/n.
func (p *Prompter) ReadYesNo(label string) bool {
	raw := strings.ToLower(p.ReadLine(label))
	return raw == "s" || raw == "si" || raw == "sí"
}

// ReadDate lee una fecha yyyy-mm-dd; reintenta hasta formato válido o EOF
// (EOF devuelve el cero de time.Time).
func (p *Prompter) ReadDate(label string) time.Time {
	for {
		raw := p.ReadLine(label)
		if raw == "" {
			return time.Time{}
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			fmt.Fprintln(p.out, "Formato incorrecto, use yyyy-mm-dd.")
			continue
		}
		return d
	}
}

// Pause espera un Enter antes de continuar.
func (p *Prompter) Pause() {
	fmt.Fprint(p.out, "\nEnter para continuar...")
	p.in.Scan()
}
