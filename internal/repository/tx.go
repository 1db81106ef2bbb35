package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OssiLV/uit-ecommerce/internal/db"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

type unitOfWork struct {
	pool *pgxpool.Pool
}

func NewUnitOfWork(pool *pgxpool.Pool) port.UnitOfWork {
	return &unitOfWork{pool: pool}
}

// Run executes fn inside one pgx transaction. Any error returned by fn
// rolls the whole transaction back, so reservations, order rows and
// cart mutations made inside fn are all-or-nothing.
func (u *unitOfWork) Run(ctx context.Context, fn func(tx port.Tx) error) (txErr error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	qtx := db.New(tx)

	if err := fn(txPorts{q: qtx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

// txPorts binds every repository to the same transaction's queries.
type txPorts struct {
	q *db.Queries
}

func (t txPorts) Carts() port.CartRepository      { return &cartRepository{q: t.q} }
func (t txPorts) Orders() port.OrderRepository    { return &orderRepository{q: t.q} }
func (t txPorts) Inventory() port.InventoryLedger { return &inventoryRepository{q: t.q} }
func (t txPorts) Catalog() port.CatalogReader     { return &catalogRepository{q: t.q} }
