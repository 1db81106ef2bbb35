package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

type OrderRepository interface {
	// Insert persists the order together with its items as one aggregate.
	Insert(ctx context.Context, order domain.Order) error
	Get(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	// GetForUpdate locks the order row for the duration of the enclosing
	// transaction so concurrent transitions serialize.
	GetForUpdate(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, order domain.Order) error
}
