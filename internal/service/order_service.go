package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

const adminCancelReason = "cancelled by admin"

// OrderService orchestrates checkout and the order lifecycle. Every
// mutation runs inside one unit of work: reservations, the order row
// and the cart clear commit together or not at all. Interaction events
// and snapshot caching happen after commit and never affect the outcome.
type OrderService struct {
	uow      port.UnitOfWork
	orders   port.OrderRepository
	recorder port.InteractionRecorder
	cache    port.OrderCache
	logger   *zap.Logger
}

func NewOrder(uow port.UnitOfWork, orders port.OrderRepository, recorder port.InteractionRecorder,
	cache port.OrderCache, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OrderService{
		uow:      uow,
		orders:   orders,
		recorder: recorder,
		cache:    cache,
		logger:   logger,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID string, shipping domain.ShippingInfo,
	paymentMethod domain.PaymentMethod) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, domain.ErrUnauthenticated
	}
	if shipping.Address == "" {
		return domain.Order{}, domain.ValidationError{Field: "shippingAddress", Reason: "must not be empty"}
	}

	var placed domain.Order

	err := s.uow.Run(ctx, func(tx port.Tx) error {
		cart, err := tx.Carts().GetCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("carts.GetCart: %w", err)
		}

		if cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		order := domain.Order{
			ID:            uuid.New(),
			OwnerID:       userID,
			Status:        domain.OrderStatusPending,
			PaymentMethod: paymentMethod,
			Shipping:      shipping,
			OrderDate:     time.Now().UTC(),
		}

		// Row locks on variants are taken in ID order, in every
		// transaction that touches more than one.
		items := append([]domain.CartItem(nil), cart.Items...)
		sort.Slice(items, func(i, j int) bool {
			return items[i].VariantID.String() < items[j].VariantID.String()
		})

		var total domain.Money

		for _, item := range items {
			// The returned price is the snapshot taken atomically
			// with the stock decrement. A failed reservation rolls
			// back every earlier one with the transaction.
			price, err := tx.Inventory().Reserve(ctx, item.VariantID, item.Quantity)
			if err != nil {
				return fmt.Errorf("inventory.Reserve: %w", err)
			}

			order.Items = append(order.Items, domain.OrderItem{
				VariantID:   item.VariantID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Color:       item.Color,
				Size:        item.Size,
				Quantity:    item.Quantity,
				Price:       price,
			})

			total, err = total.Add(price.Mul(item.Quantity))
			if err != nil {
				return fmt.Errorf("total.Add: %w", err)
			}
		}

		order.Total = total

		if err := tx.Orders().Insert(ctx, order); err != nil {
			return fmt.Errorf("orders.Insert: %w", err)
		}

		if err := tx.Carts().Clear(ctx, userID); err != nil {
			return fmt.Errorf("carts.Clear: %w", err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.recordPurchases(placed)
	s.cacheSet(ctx, placed)

	return placed, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	orders, err := s.orders.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListByOwner: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID string, orderID uuid.UUID) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, domain.ErrUnauthenticated
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, orderID)
		if err != nil {
			s.logger.Warn("order cache read failed", zap.String("order_id", orderID.String()), zap.Error(err))
		} else if ok {
			if cached.OwnerID != userID {
				return domain.Order{}, domain.ForbiddenError{Entity: "order", ID: orderID.String()}
			}
			return cached, nil
		}
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.Get: %w", err)
	}

	if order.OwnerID != userID {
		return domain.Order{}, domain.ForbiddenError{Entity: "order", ID: orderID.String()}
	}

	return order, nil
}

// CancelOrder is the user-facing cancellation: owner only, and only
// while the order is still PENDING.
func (s *OrderService) CancelOrder(ctx context.Context, userID string, orderID uuid.UUID, reason string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, domain.ErrUnauthenticated
	}

	var cancelled domain.Order

	err := s.uow.Run(ctx, func(tx port.Tx) error {
		order, err := tx.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("orders.GetForUpdate: %w", err)
		}

		if order.OwnerID != userID {
			return domain.ForbiddenError{Entity: "order", ID: orderID.String()}
		}

		if order.Status != domain.OrderStatusPending {
			return domain.InvalidTransitionError{From: order.Status, To: domain.OrderStatusCancelled}
		}

		cancelled, err = cancelLocked(ctx, tx, order, reason)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.cacheInvalidate(ctx, orderID)

	return cancelled, nil
}

// AdminUpdateStatus applies one lifecycle transition. Terminal orders
// and pairs outside the transition table are rejected.
func (s *OrderService) AdminUpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus domain.OrderStatus) (domain.Order, error) {
	var updated domain.Order

	err := s.uow.Run(ctx, func(tx port.Tx) error {
		order, err := tx.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("orders.GetForUpdate: %w", err)
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return domain.InvalidTransitionError{From: order.Status, To: newStatus}
		}

		switch newStatus {
		case domain.OrderStatusDelivered:
			now := time.Now().UTC()
			order.DeliveryDate = &now

		case domain.OrderStatusCancelled:
			updated, err = cancelLocked(ctx, tx, order, adminCancelReason)
			return err
		}

		order.Status = newStatus

		if err := tx.Orders().UpdateStatus(ctx, order); err != nil {
			return fmt.Errorf("orders.UpdateStatus: %w", err)
		}

		updated = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.cacheInvalidate(ctx, orderID)

	return updated, nil
}

// cancelLocked releases every item's stock and records the reason. The
// caller holds the order row lock and has validated the transition.
func cancelLocked(ctx context.Context, tx port.Tx, order domain.Order, reason string) (domain.Order, error) {
	items := append([]domain.OrderItem(nil), order.Items...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].VariantID.String() < items[j].VariantID.String()
	})

	for _, item := range items {
		if err := tx.Inventory().Release(ctx, item.VariantID, item.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("inventory.Release: %w", err)
		}
	}

	order.Status = domain.OrderStatusCancelled
	order.CancelReason = &reason

	if err := tx.Orders().UpdateStatus(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("orders.UpdateStatus: %w", err)
	}

	return order, nil
}

// recordPurchases emits one PURCHASE event per distinct product.
func (s *OrderService) recordPurchases(order domain.Order) {
	if s.recorder == nil {
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}

		s.recorder.Record(order.OwnerID, item.ProductID, domain.InteractionPurchase)
	}
}

func (s *OrderService) cacheSet(ctx context.Context, order domain.Order) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, order); err != nil {
		s.logger.Warn("order cache write failed", zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

func (s *OrderService) cacheInvalidate(ctx context.Context, orderID uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, orderID); err != nil {
		s.logger.Warn("order cache invalidation failed", zap.String("order_id", orderID.String()), zap.Error(err))
	}
}
