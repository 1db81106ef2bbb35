package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ID        uuid.UUID
	VariantID uuid.UUID
	Quantity  int32

	// Read-time view of the variant, not part of the stored line.
	ProductID   uuid.UUID
	ProductName string
	Color       string
	Size        string
	Price       Money
	Stock       int32

	CreatedAt time.Time
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) ItemCount() int {
	return len(c.Items)
}

func (c Cart) Total() (Money, error) {
	var total Money

	for _, item := range c.Items {
		var err error

		total, err = total.Add(item.Price.Mul(item.Quantity))
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}
