package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"

	"github.com/OssiLV/uit-ecommerce/internal/db"
	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

type inventoryRepository struct {
	q *db.Queries
}

func NewInventory(pool *pgxpool.Pool) port.InventoryLedger {
	return &inventoryRepository{q: db.New(pool)}
}

func NewInventoryWithTx(tx pgx.Tx) port.InventoryLedger {
	return &inventoryRepository{q: db.New(tx)}
}

// Reserve decrements stock and reads the price in one UPDATE, the row
// lock makes concurrent reservations on the same variant serialize.
func (r *inventoryRepository) Reserve(ctx context.Context, variantID uuid.UUID, quantity int32) (domain.Money, error) {
	if quantity < 1 {
		return domain.Money{}, domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	row, err := r.q.ReserveStock(ctx, db.ReserveStockParams{
		ID:            variantID,
		StockQuantity: quantity,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// No row updated: missing variant or short stock.
		return domain.Money{}, r.reserveFailure(ctx, variantID, quantity)
	}
	if err != nil {
		return domain.Money{}, fmt.Errorf("q.ReserveStock: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency}, nil
}

func (r *inventoryRepository) reserveFailure(ctx context.Context, variantID uuid.UUID, quantity int32) error {
	variant, err := r.q.GetVariant(ctx, variantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFoundError{Entity: "variant", ID: variantID.String()}
	}
	if err != nil {
		return fmt.Errorf("q.GetVariant: %w", err)
	}

	return domain.InsufficientStockError{
		VariantID: variantID,
		Requested: quantity,
		Available: variant.StockQuantity,
	}
}

func (r *inventoryRepository) Release(ctx context.Context, variantID uuid.UUID, quantity int32) error {
	if quantity < 1 {
		return domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	rowsAffected, err := r.q.ReleaseStock(ctx, db.ReleaseStockParams{
		ID:            variantID,
		StockQuantity: quantity,
	})
	if err != nil {
		return fmt.Errorf("q.ReleaseStock: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NotFoundError{Entity: "variant", ID: variantID.String()}
	}

	return nil
}
