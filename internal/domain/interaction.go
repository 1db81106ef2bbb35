package domain

import (
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionView     InteractionType = "VIEW"
	InteractionCart     InteractionType = "CART"
	InteractionPurchase InteractionType = "PURCHASE"
)

// Score is the rating weight fed into recommendation training.
func (t InteractionType) Score() float64 {
	switch t {
	case InteractionView:
		return 1.0
	case InteractionCart:
		return 3.0
	case InteractionPurchase:
		return 5.0
	}

	return 0.0
}

type Interaction struct {
	UserID    string
	ProductID uuid.UUID
	Type      InteractionType
	Rating    float64
	Timestamp time.Time
}
