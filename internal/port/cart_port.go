package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// AddItem merges into an existing line for the same variant and
	// returns the resulting quantity of that line.
	AddItem(ctx context.Context, ownerID string, variantID uuid.UUID, quantity int32) (int32, error)
	ItemQuantity(ctx context.Context, ownerID string, variantID uuid.UUID) (int32, error)
	DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error)
	Clear(ctx context.Context, ownerID string) error
}
