package domain

import "github.com/google/uuid"

// Variant is a purchasable configuration of a product with its own
// price and stock. Stock is mutated only through the inventory ledger.
type Variant struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Color       string
	Size        string
	SKU         string
	Price       Money
	Stock       int32
}
