package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

// CartService owns cart mutations. Its stock check on add is a soft
// one: the inventory ledger is the final authority at checkout, since
// stock may change between add and checkout.
type CartService struct {
	carts    port.CartRepository
	catalog  port.CatalogReader
	recorder port.InteractionRecorder
}

func NewCart(carts port.CartRepository, catalog port.CatalogReader, recorder port.InteractionRecorder) *CartService {
	return &CartService{
		carts:    carts,
		catalog:  catalog,
		recorder: recorder,
	}
}

func (s *CartService) AddItem(ctx context.Context, userID string, variantID uuid.UUID, quantity int32) (domain.Cart, error) {
	if userID == "" {
		return domain.Cart{}, domain.ErrUnauthenticated
	}
	if quantity < 1 {
		return domain.Cart{}, domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	variant, err := s.catalog.GetVariant(ctx, variantID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("catalog.GetVariant: %w", err)
	}

	existing, err := s.carts.ItemQuantity(ctx, userID, variantID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.ItemQuantity: %w", err)
	}

	if existing+quantity > variant.Stock {
		return domain.Cart{}, domain.InsufficientStockError{
			VariantID: variantID,
			Requested: existing + quantity,
			Available: variant.Stock,
		}
	}

	if _, err := s.carts.AddItem(ctx, userID, variantID, quantity); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.AddItem: %w", err)
	}

	if s.recorder != nil {
		s.recorder.Record(userID, variant.ProductID, domain.InteractionCart)
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if userID == "" {
		return domain.Cart{}, domain.ErrUnauthenticated
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID uuid.UUID) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	deleted, err := s.carts.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("carts.DeleteItem: %w", err)
	}

	// A line belonging to another user is indistinguishable from a
	// missing one: the delete is scoped to the caller's cart.
	if !deleted {
		return domain.NotFoundError{Entity: "cart item", ID: itemID.String()}
	}

	return nil
}
