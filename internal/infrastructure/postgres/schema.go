package postgres

import (
	"context"
	"fmt"
)

// auditColumns columnas de auditoría comunes a las cinco tablas.
const auditColumns = `
	created_at        TIMESTAMPTZ NOT NULL,
	created_by        TEXT NOT NULL,
	last_modified_at  TIMESTAMPTZ NOT NULL,
	last_modified_by  TEXT NOT NULL,
	is_deleted        BOOLEAN NOT NULL DEFAULT FALSE,
	deleted_at        TIMESTAMPTZ,
	deleted_by        TEXT NOT NULL DEFAULT ''`

// schemaStatements se ejecutan en orden al arrancar; todas son idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		sku           TEXT NOT NULL UNIQUE,
		category      TEXT NOT NULL,
		is_perishable BOOLEAN NOT NULL,` + auditColumns + `
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		contact_email TEXT NOT NULL DEFAULT '',` + auditColumns + `
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		tax_id TEXT NOT NULL,` + auditColumns + `
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,` + auditColumns + `
	)`,
	`CREATE TABLE IF NOT EXISTS batches (
		id              TEXT PRIMARY KEY,
		product_id      TEXT NOT NULL REFERENCES products(id),
		supplier_id     TEXT NOT NULL REFERENCES suppliers(id),
		quantity        BIGINT NOT NULL CHECK (quantity >= 0),
		unit_cost       NUMERIC(14, 4) NOT NULL CHECK (unit_cost >= 0),
		entry_date      TIMESTAMPTZ NOT NULL,
		expiration_date TIMESTAMPTZ,` + auditColumns + `
	)`,
	// Índice de selección FIFO: candidatos por producto en orden de antigüedad.
	`CREATE INDEX IF NOT EXISTS idx_batches_fifo
		ON batches (product_id, entry_date, id) WHERE quantity > 0 AND NOT is_deleted`,
}

// EnsureSchema crea las cinco tablas y sus índices si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
