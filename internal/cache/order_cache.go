package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

// OrderCache keeps order snapshots in Redis with a TTL. It is a pure
// read optimization: misses and backend failures fall through to the
// repository.
type OrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.OrderCache = (*OrderCache)(nil)

func NewOrder(client *redis.Client, ttl time.Duration) *OrderCache {
	return &OrderCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *OrderCache) Get(ctx context.Context, orderID uuid.UUID) (domain.Order, bool, error) {
	data, err := c.client.Get(ctx, orderKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var cached cachedOrder
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return domain.Order{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	order, err := cached.toDomain()
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("cached.toDomain: %w", err)
	}

	return order, true, nil
}

func (c *OrderCache) Set(ctx context.Context, order domain.Order) error {
	data, err := json.Marshal(fromDomain(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, orderKey(order.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (c *OrderCache) Invalidate(ctx context.Context, orderID uuid.UUID) error {
	if err := c.client.Del(ctx, orderKey(orderID)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

func orderKey(orderID uuid.UUID) string {
	return fmt.Sprintf("order:%s", orderID)
}

type cachedOrder struct {
	ID              uuid.UUID        `json:"id"`
	OwnerID         string           `json:"owner_id"`
	Status          string           `json:"status"`
	TotalAmount     string           `json:"total_amount"`
	TotalCurrency   string           `json:"total_currency"`
	PaymentMethod   string           `json:"payment_method"`
	ReceiverName    string           `json:"receiver_name"`
	ShippingAddress string           `json:"shipping_address"`
	ShippingPhone   string           `json:"shipping_phone"`
	OrderDate       time.Time        `json:"order_date"`
	DeliveryDate    *time.Time       `json:"delivery_date,omitempty"`
	CancelReason    *string          `json:"cancel_reason,omitempty"`
	Items           []cachedOrderItem `json:"items"`
}

type cachedOrderItem struct {
	VariantID     uuid.UUID `json:"variant_id"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Color         string    `json:"color"`
	Size          string    `json:"size"`
	Quantity      int32     `json:"quantity"`
	PriceAmount   string    `json:"price_amount"`
	PriceCurrency string    `json:"price_currency"`
}

func fromDomain(order domain.Order) cachedOrder {
	cached := cachedOrder{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		Status:          string(order.Status),
		TotalAmount:     order.Total.Amount.String(),
		TotalCurrency:   order.Total.Currency.String(),
		PaymentMethod:   string(order.PaymentMethod),
		ReceiverName:    order.Shipping.ReceiverName,
		ShippingAddress: order.Shipping.Address,
		ShippingPhone:   order.Shipping.Phone,
		OrderDate:       order.OrderDate,
		DeliveryDate:    order.DeliveryDate,
		CancelReason:    order.CancelReason,
	}

	for _, item := range order.Items {
		cached.Items = append(cached.Items, cachedOrderItem{
			VariantID:     item.VariantID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Color:         item.Color,
			Size:          item.Size,
			Quantity:      item.Quantity,
			PriceAmount:   item.Price.Amount.String(),
			PriceCurrency: item.Price.Currency.String(),
		})
	}

	return cached
}

func (c cachedOrder) toDomain() (domain.Order, error) {
	status, err := domain.ParseOrderStatus(c.Status)
	if err != nil {
		return domain.Order{}, err
	}

	total, err := parseMoney(c.TotalAmount, c.TotalCurrency)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		Status:        status,
		Total:         total,
		PaymentMethod: domain.PaymentMethod(c.PaymentMethod),
		Shipping: domain.ShippingInfo{
			ReceiverName: c.ReceiverName,
			Address:      c.ShippingAddress,
			Phone:        c.ShippingPhone,
		},
		OrderDate:    c.OrderDate,
		DeliveryDate: c.DeliveryDate,
		CancelReason: c.CancelReason,
	}

	for _, item := range c.Items {
		price, err := parseMoney(item.PriceAmount, item.PriceCurrency)
		if err != nil {
			return domain.Order{}, err
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
	}

	return order, nil
}

func parseMoney(amount, code string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}
