package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/OssiLV/uit-ecommerce/internal/db"
	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogReader {
	return &catalogRepository{q: db.New(pool)}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogReader {
	return &catalogRepository{q: db.New(tx)}
}

func (r *catalogRepository) GetVariant(ctx context.Context, variantID uuid.UUID) (domain.Variant, error) {
	row, err := r.q.GetVariant(ctx, variantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Variant{}, domain.NotFoundError{Entity: "variant", ID: variantID.String()}
	}
	if err != nil {
		return domain.Variant{}, fmt.Errorf("q.GetVariant: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Variant{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Variant{
		ID:          row.ID,
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Color:       row.Color,
		Size:        row.Size,
		SKU:         row.Sku,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Stock:       row.StockQuantity,
	}, nil
}

// SeedVariant inserts a catalog row, used by seeding and tests. The
// catalog itself is owned by another subsystem.
func SeedVariant(ctx context.Context, pool *pgxpool.Pool, v domain.Variant) error {
	q := db.New(pool)

	amount := v.Price.Amount
	if amount.Cmp(decimal.Zero) < 0 {
		return domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	err := q.InsertVariant(ctx, db.InsertVariantParams{
		ID:            v.ID,
		ProductID:     v.ProductID,
		ProductName:   v.ProductName,
		Color:         v.Color,
		Size:          v.Size,
		Sku:           v.SKU,
		PriceAmount:   amount,
		PriceCurrency: v.Price.Currency.String(),
		StockQuantity: v.Stock,
	})
	if err != nil {
		return fmt.Errorf("q.InsertVariant: %w", err)
	}

	return nil
}
