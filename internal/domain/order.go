package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	}

	return "", ValidationError{Field: "status", Reason: "unknown order status: " + s}
}

// transitions is the full lifecycle table. Anything not listed here
// fails with InvalidTransitionError.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusDelivered},
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}

	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch method := PaymentMethod(s); method {
	case PaymentMethodCOD, PaymentMethodBankTransfer:
		return method, nil
	}

	return "", ValidationError{Field: "paymentMethod", Reason: "unknown payment method: " + s}
}

// ShippingInfo is copied onto the order at placement, later profile
// edits never alter past orders.
type ShippingInfo struct {
	ReceiverName string
	Address      string
	Phone        string
}

// Order is immutable once placed, except for status, delivery date and
// cancel reason which change only through lifecycle transitions.
type Order struct {
	ID            uuid.UUID
	OwnerID       string
	Status        OrderStatus
	Total         Money
	PaymentMethod PaymentMethod
	Shipping      ShippingInfo
	OrderDate     time.Time
	DeliveryDate  *time.Time
	CancelReason  *string
	Items         []OrderItem
}

// OrderItem is a creation-time snapshot: price and product attributes
// are copied, not derived, so later catalog changes leave it untouched.
type OrderItem struct {
	VariantID   uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Color       string
	Size        string
	Quantity    int32
	Price       Money
}

func (o Order) Subtotal() (Money, error) {
	var total Money

	for _, item := range o.Items {
		var err error

		total, err = total.Add(item.Price.Mul(item.Quantity))
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}
