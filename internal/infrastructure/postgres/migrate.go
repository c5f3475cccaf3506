package postgres

import (
	"context"
	"fmt"
)

// Migrate aplica el esquema de forma idempotente. No hay versionado de
// migraciones: el DDL completo es CREATE IF NOT EXISTS y se ejecuta en cada
// arranque.
func Migrate(ctx context.Context, q Querier) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			contact    TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL UNIQUE,
			base_unit       TEXT NOT NULL,
			quantity        NUMERIC NOT NULL DEFAULT 0,
			last_unit_price NUMERIC NOT NULL DEFAULT 0,
			reorder_level   NUMERIC NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS batches (
			id          TEXT PRIMARY KEY,
			product_id  TEXT NOT NULL REFERENCES products(id),
			remaining   NUMERIC NOT NULL DEFAULT 0,
			received_at TIMESTAMPTZ,
			expires_at  TIMESTAMPTZ,
			label       TEXT NOT NULL DEFAULT ''
		)`,
		// Orden de consumo FEFO: vencidos primero, sin vencimiento al final
		`CREATE INDEX IF NOT EXISTS idx_batches_fefo
			ON batches (product_id, expires_at ASC NULLS LAST, received_at ASC)
			WHERE remaining > 0`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id              TEXT PRIMARY KEY,
			product_id      TEXT NOT NULL REFERENCES products(id),
			supplier_id     TEXT REFERENCES suppliers(id),
			quantity        NUMERIC NOT NULL,
			unit            TEXT NOT NULL DEFAULT '',
			base_quantity   NUMERIC NOT NULL,
			total_price     NUMERIC NOT NULL DEFAULT 0,
			unit_price_base NUMERIC NOT NULL DEFAULT 0,
			date            TIMESTAMPTZ NOT NULL,
			lot             TEXT NOT NULL DEFAULT '',
			expires_at      TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_product_date
			ON purchases (product_id, date DESC)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			yield      NUMERIC NOT NULL,
			yield_unit TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_lines (
			id            TEXT PRIMARY KEY,
			recipe_id     TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			product_id    TEXT NOT NULL REFERENCES products(id),
			quantity      NUMERIC NOT NULL,
			unit          TEXT NOT NULL DEFAULT '',
			base_quantity NUMERIC NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS production_runs (
			id        TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL REFERENCES recipes(id),
			quantity  NUMERIC NOT NULL,
			date      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id            TEXT PRIMARY KEY,
			product_id    TEXT NOT NULL REFERENCES products(id),
			quantity      NUMERIC NOT NULL,
			unit          TEXT NOT NULL DEFAULT '',
			base_quantity NUMERIC NOT NULL,
			unit_price    NUMERIC NOT NULL DEFAULT 0,
			date          TIMESTAMPTZ NOT NULL,
			location      TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
		`CREATE TABLE IF NOT EXISTS wastes (
			id            TEXT PRIMARY KEY,
			product_id    TEXT NOT NULL REFERENCES products(id),
			quantity      NUMERIC NOT NULL,
			unit          TEXT NOT NULL DEFAULT '',
			base_quantity NUMERIC NOT NULL,
			reason        TEXT NOT NULL DEFAULT '',
			date          TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS stock_adjustments (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id),
			date       TIMESTAMPTZ NOT NULL,
			before_qty NUMERIC NOT NULL,
			after_qty  NUMERIC NOT NULL,
			reason     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adjustments_product_date
			ON stock_adjustments (product_id, date DESC)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id          TEXT PRIMARY KEY,
			date        TIMESTAMPTZ NOT NULL,
			description TEXT NOT NULL,
			amount      NUMERIC NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
