package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/OssiLV/uit-ecommerce/internal/port"
	"github.com/OssiLV/uit-ecommerce/internal/repository"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepositorySuite) TestAddItem() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	variant := seedVariant(t, suite.pool, 10, "24.50")

	quantity, err := suite.repo.AddItem(ctx, ownerID, variant.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), quantity)

	// Adding the same variant again merges into the existing line.
	quantity, err = suite.repo.AddItem(ctx, ownerID, variant.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(5), quantity)

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, variant.ID, item.VariantID)
	assert.Equal(t, int32(5), item.Quantity)
	assert.Equal(t, variant.ProductID, item.ProductID)
	assert.Equal(t, variant.ProductName, item.ProductName)
	assert.Equal(t, "24.50", item.Price.Amount.StringFixed(2))
	assert.Equal(t, int32(10), item.Stock)
	assert.False(t, item.CreatedAt.IsZero())
}

func (suite *cartRepositorySuite) TestAddItem_EmptyOwnerID() {
	t := suite.T()

	variant := seedVariant(t, suite.pool, 5, "5.00")

	_, err := suite.repo.AddItem(t.Context(), "", variant.ID, 1)
	require.EqualError(t, err, "ownerID is empty")
}

func (suite *cartRepositorySuite) TestItemQuantity() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	variant := seedVariant(t, suite.pool, 5, "5.00")

	// No line yet, zero without an error.
	quantity, err := suite.repo.ItemQuantity(ctx, ownerID, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), quantity)

	_, err = suite.repo.AddItem(ctx, ownerID, variant.ID, 4)
	require.NoError(t, err)

	quantity, err = suite.repo.ItemQuantity(ctx, ownerID, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(4), quantity)
}

func (suite *cartRepositorySuite) TestDeleteItem() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	variant := seedVariant(t, suite.pool, 5, "5.00")

	_, err := suite.repo.AddItem(ctx, ownerID, variant.ID, 1)
	require.NoError(t, err)

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	deleted, err := suite.repo.DeleteItem(ctx, ownerID, cart.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	cart, err = suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func (suite *cartRepositorySuite) TestDeleteItem_NotFound() {
	t := suite.T()

	deleted, err := suite.repo.DeleteItem(t.Context(), gofakeit.UUID(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

// A line can only be deleted by the owner who added it.
func (suite *cartRepositorySuite) TestDeleteItem_OtherOwner() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	variant := seedVariant(t, suite.pool, 5, "5.00")

	_, err := suite.repo.AddItem(ctx, ownerID, variant.ID, 1)
	require.NoError(t, err)

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	deleted, err := suite.repo.DeleteItem(ctx, gofakeit.UUID(), cart.Items[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	cart, err = suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func (suite *cartRepositorySuite) TestGetCart_Empty() {
	t := suite.T()

	cart, err := suite.repo.GetCart(t.Context(), gofakeit.UUID())
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
}

func (suite *cartRepositorySuite) TestGetCart_EmptyOwnerID() {
	t := suite.T()

	_, err := suite.repo.GetCart(t.Context(), "")
	require.EqualError(t, err, "ownerID is empty")
}

func (suite *cartRepositorySuite) TestClear() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()

	for range 3 {
		variant := seedVariant(t, suite.pool, 5, "5.00")

		_, err := suite.repo.AddItem(ctx, ownerID, variant.ID, 1)
		require.NoError(t, err)
	}

	err := suite.repo.Clear(ctx, ownerID)
	require.NoError(t, err)

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
