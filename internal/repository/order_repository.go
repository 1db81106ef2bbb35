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

type orderRepository struct {
	q *db.Queries
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{q: db.New(pool)}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{q: db.New(tx)}
}

func (r *orderRepository) Insert(ctx context.Context, order domain.Order) error {
	if order.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order has no items")
	}

	err := r.q.InsertOrder(ctx, db.InsertOrderParams{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		Status:          string(order.Status),
		TotalAmount:     order.Total.Amount,
		TotalCurrency:   order.Total.Currency.String(),
		PaymentMethod:   string(order.PaymentMethod),
		ReceiverName:    order.Shipping.ReceiverName,
		ShippingAddress: order.Shipping.Address,
		ShippingPhone:   order.Shipping.Phone,
		OrderDate:       order.OrderDate,
	})
	if err != nil {
		return fmt.Errorf("q.InsertOrder: %w", err)
	}

	for _, item := range order.Items {
		err := r.q.InsertOrderItem(ctx, db.InsertOrderItemParams{
			OrderID:       order.ID,
			VariantID:     item.VariantID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Color:         item.Color,
			Size:          item.Size,
			Quantity:      item.Quantity,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
		})
		if err != nil {
			return fmt.Errorf("q.InsertOrderItem: %w", err)
		}
	}

	return nil
}

func (r *orderRepository) Get(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.NotFoundError{Entity: "order", ID: orderID.String()}
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	return r.loadItems(ctx, row)
}

func (r *orderRepository) GetForUpdate(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrderForUpdate(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.NotFoundError{Entity: "order", ID: orderID.String()}
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderForUpdate: %w", err)
	}

	return r.loadItems(ctx, row)
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByOwner: %w", err)
	}

	var orders []domain.Order
	for _, row := range rows {
		order, err := r.loadItems(ctx, row)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order domain.Order) error {
	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:           order.ID,
		Status:       string(order.Status),
		DeliveryDate: order.DeliveryDate,
		CancelReason: order.CancelReason,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NotFoundError{Entity: "order", ID: order.ID.String()}
	}

	return nil
}

func (r *orderRepository) loadItems(ctx context.Context, row db.Order) (domain.Order, error) {
	itemRows, err := r.q.GetOrderItems(ctx, row.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	items, err := mapOrderItemRowsToDomain(itemRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderItemRowsToDomain: %w", err)
	}

	return mapOrderRowToDomain(row, items)
}

func mapOrderRowToDomain(row db.Order, items []domain.OrderItem) (domain.Order, error) {
	status, err := domain.ParseOrderStatus(row.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ParseOrderStatus: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	return domain.Order{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Status:        status,
		Total:         domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		PaymentMethod: domain.PaymentMethod(row.PaymentMethod),
		Shipping: domain.ShippingInfo{
			ReceiverName: row.ReceiverName,
			Address:      row.ShippingAddress,
			Phone:        row.ShippingPhone,
		},
		OrderDate:    row.OrderDate,
		DeliveryDate: row.DeliveryDate,
		CancelReason: row.CancelReason,
		Items:        items,
	}, nil
}

func mapOrderItemRowsToDomain(rows []db.GetOrderItemsRow) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	for _, row := range rows {
		parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
		}

		items = append(items, domain.OrderItem{
			VariantID:   row.VariantID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Color:       row.Color,
			Size:        row.Size,
			Quantity:    row.Quantity,
			Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		})
	}

	return items, nil
}
