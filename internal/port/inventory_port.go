package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

// InventoryLedger is the only writer of variant stock. Reserve and
// Release on one variant are linearizable with respect to each other.
type InventoryLedger interface {
	// Reserve atomically checks stock >= quantity and decrements it,
	// returning the variant's price at the moment of reservation.
	// Fails with domain.InsufficientStockError when stock is short and
	// domain.NotFoundError when the variant does not exist.
	Reserve(ctx context.Context, variantID uuid.UUID, quantity int32) (domain.Money, error)

	// Release atomically increments stock. Callers must not release
	// the same reservation twice.
	Release(ctx context.Context, variantID uuid.UUID, quantity int32) error
}

// CatalogReader is the narrow read contract towards the product
// catalog. Stock mutation goes only through InventoryLedger.
type CatalogReader interface {
	GetVariant(ctx context.Context, variantID uuid.UUID) (domain.Variant, error)
}
