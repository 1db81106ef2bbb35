package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnauthenticated = errors.New("unauthenticated")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s[%s] not found", e.Entity, e.ID)
}

type ForbiddenError struct {
	Entity string
	ID     string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("%s[%s] does not belong to the caller", e.Entity, e.ID)
}

type InsufficientStockError struct {
	VariantID uuid.UUID
	Requested int32
	Available int32
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for variant[%s]: requested %d, available %d",
		e.VariantID, e.Requested, e.Available)
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: %s -> %s", e.From, e.To)
}
