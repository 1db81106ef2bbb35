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

type cartRepository struct {
	q *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{q: db.New(pool)}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{q: db.New(tx)}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, variantID uuid.UUID, quantity int32) (int32, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	row, err := r.q.UpsertCartItem(ctx, db.UpsertCartItemParams{
		OwnerID:   ownerID,
		VariantID: variantID,
		Quantity:  quantity,
	})
	if err != nil {
		return 0, fmt.Errorf("q.UpsertCartItem: %w", err)
	}

	return row.Quantity, nil
}

func (r *cartRepository) ItemQuantity(ctx context.Context, ownerID string, variantID uuid.UUID) (int32, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	quantity, err := r.q.GetCartItemQuantity(ctx, db.GetCartItemQuantityParams{
		OwnerID:   ownerID,
		VariantID: variantID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("q.GetCartItemQuantity: %w", err)
	}

	return quantity, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCartItem(ctx, db.DeleteCartItemParams{
		OwnerID: ownerID,
		ID:      itemID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	if _, err := r.q.ClearCart(ctx, ownerID); err != nil {
		return fmt.Errorf("q.ClearCart: %w", err)
	}

	return nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:          row.ID,
		VariantID:   row.VariantID,
		Quantity:    row.Quantity,
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Color:       row.Color,
		Size:        row.Size,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Stock:       row.StockQuantity,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
