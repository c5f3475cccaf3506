package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Cakawam/cookbook/internal/application/ledger"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := NewRepos(tx)
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos ata el conjunto completo de repositorios del ledger a un Querier
// (pool o tx).
func NewRepos(q Querier) ledger.Repos {
	return ledger.Repos{
		Suppliers:   NewSupplierRepository(q),
		Products:    NewProductRepository(q),
		Batches:     NewBatchRepository(q),
		Purchases:   NewPurchaseRepository(q),
		Recipes:     NewRecipeRepository(q),
		Productions: NewProductionRepository(q),
		Sales:       NewSaleRepository(q),
		Wastes:      NewWasteRepository(q),
		Adjustments: NewAdjustmentRepository(q),
	}
}
