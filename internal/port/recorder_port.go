package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

// InteractionRecorder is fire-and-forget: Record never blocks and its
// failures are never observed by the calling workflow.
type InteractionRecorder interface {
	Record(userID string, productID uuid.UUID, eventType domain.InteractionType)
}

// OrderCache is a best-effort read-through cache of order snapshots.
// All methods swallow backend failures into their error return, callers
// log and move on.
type OrderCache interface {
	Get(ctx context.Context, orderID uuid.UUID) (domain.Order, bool, error)
	Set(ctx context.Context, order domain.Order) error
	Invalidate(ctx context.Context, orderID uuid.UUID) error
}
