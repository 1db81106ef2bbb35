package service_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

func TestAddItem(t *testing.T) {
	f := newFixture()
	ctx := t.Context()
	userID := gofakeit.UUID()

	variant := randomVariant(t, 10, "10.00")
	f.store.seedVariant(variant)

	cart, err := f.carts.AddItem(ctx, userID, variant.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(2), cart.Items[0].Quantity)
	assert.Equal(t, variant.ProductName, cart.Items[0].ProductName)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, "20.00", total.Amount.StringFixed(2))

	// Same variant merges into the existing line.
	cart, err = f.carts.AddItem(ctx, userID, variant.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(5), cart.Items[0].Quantity)

	// A CART interaction per add.
	events := f.recorder.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, domain.InteractionCart, events[0].Type)
	assert.Equal(t, variant.ProductID, events[0].ProductID)
}

func TestAddItem_Validation(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	variant := randomVariant(t, 10, "10.00")
	f.store.seedVariant(variant)

	tests := []struct {
		name     string
		userID   string
		quantity int32
		wantErr  error
	}{
		{name: "zero quantity", userID: gofakeit.UUID(), quantity: 0},
		{name: "negative quantity", userID: gofakeit.UUID(), quantity: -1},
		{name: "empty user", userID: "", quantity: 1, wantErr: domain.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.carts.AddItem(ctx, tt.userID, variant.ID, tt.quantity)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			var validationErr domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAddItem_UnknownVariant(t *testing.T) {
	f := newFixture()

	_, err := f.carts.AddItem(t.Context(), gofakeit.UUID(), uuid.New(), 1)

	var notFoundErr domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestAddItem_ExceedsStock(t *testing.T) {
	f := newFixture()
	ctx := t.Context()
	userID := gofakeit.UUID()

	variant := randomVariant(t, 5, "10.00")
	f.store.seedVariant(variant)

	_, err := f.carts.AddItem(ctx, userID, variant.ID, 3)
	require.NoError(t, err)

	// 3 already in the cart, 3 more would exceed stock 5.
	_, err = f.carts.AddItem(ctx, userID, variant.ID, 3)

	var stockErr domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int32(6), stockErr.Requested)
	assert.Equal(t, int32(5), stockErr.Available)

	// The cart kept its original line.
	cart, err := f.carts.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(3), cart.Items[0].Quantity)
}

func TestGetCart_EmptyIsNotAnError(t *testing.T) {
	f := newFixture()

	cart, err := f.carts.GetCart(t.Context(), gofakeit.UUID())
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestRemoveItem(t *testing.T) {
	f := newFixture()
	ctx := t.Context()
	userID := gofakeit.UUID()

	variant := randomVariant(t, 10, "10.00")
	f.store.seedVariant(variant)

	cart, err := f.carts.AddItem(ctx, userID, variant.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	err = f.carts.RemoveItem(ctx, userID, cart.Items[0].ID)
	require.NoError(t, err)

	cart, err = f.carts.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItem_OtherUsersLine(t *testing.T) {
	f := newFixture()
	ctx := t.Context()
	userID := gofakeit.UUID()

	variant := randomVariant(t, 10, "10.00")
	f.store.seedVariant(variant)

	cart, err := f.carts.AddItem(ctx, userID, variant.ID, 1)
	require.NoError(t, err)

	err = f.carts.RemoveItem(ctx, gofakeit.UUID(), cart.Items[0].ID)

	var notFoundErr domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	// The owner still has the line.
	cart, err = f.carts.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}
