package console

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen/internal/domain"
)

// ── Prompter ──────────────────────────────────────────────────────────────────

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hola mundo  \n"), &out)

	assert.Equal(t, "hola mundo", p.ReadLine("Nombre: "))
	assert.Contains(t, out.String(), "Nombre: ")
}

// Reintenta hasta recibir un entero válido; EOF devuelve cero.
func TestPrompter_ReadInt64(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n42\n"), &out)

	assert.Equal(t, int64(42), p.ReadInt64("Cantidad: "))
	assert.Contains(t, out.String(), "Formato incorrecto")

	eof := NewPrompter(strings.NewReader(""), &out)
	assert.Zero(t, eof.ReadInt64("Cantidad: "))
}

func TestPrompter_ReadDecimal(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("doce\n12.50\n"), &out)

	assert.Equal(t, "12.5", p.ReadDecimal("Costo: ").String())
	assert.Contains(t, out.String(), "Formato incorrecto")
}

func TestPrompter_ReadYesNo(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("s\nSí\nn\nqué\n"), &out)

	assert.True(t, p.ReadYesNo("¿Seguro? "))
	assert.True(t, p.ReadYesNo("¿Seguro? "))
	assert.False(t, p.ReadYesNo("¿Seguro? "))
	assert.False(t, p.ReadYesNo("¿Seguro? "))
}

func TestPrompter_ReadDate(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("31/12/2026\n2026-12-31\n"), &out)

	got := p.ReadDate("Fecha: ")
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), got)
	assert.Contains(t, out.String(), "Formato incorrecto")

	eof := NewPrompter(strings.NewReader(""), &out)
	assert.True(t, eof.ReadDate("Fecha: ").IsZero())
}

// ── Traducción de errores ─────────────────────────────────────────────────────

func TestFriendlyError(t *testing.T) {
	insufficient := &domain.InsufficientStockError{Available: 7, Requested: 8}
	msg := friendlyError(fmt.Errorf("registrar salida: %w", insufficient))
	assert.Contains(t, msg, "disponibles 7")
	assert.Contains(t, msg, "solicitadas 8")
	assert.Contains(t, msg, "faltan 1")

	assert.Equal(t, "❌ Credenciales incorrectas.", friendlyError(domain.ErrUnauthorized))
	assert.Equal(t, "❌ Registro no encontrado.", friendlyError(domain.ErrNotFound))
	assert.Contains(t, friendlyError(errors.New("boom")), "boom")
}

// ── Helpers de tabla ──────────────────────────────────────────────────────────

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "un nomb...", truncate("un nombre larguísimo", 10))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0b7faa10", shortID("0b7faa10-16a1-4b1c-8a2e-7d1f00000000"))
	assert.Equal(t, "sinDash", shortID("sinDash"))
}
