package repository_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
	"github.com/OssiLV/uit-ecommerce/internal/repository"
)

type inventoryRepositorySuite struct {
	suite.Suite

	ledger  port.InventoryLedger
	catalog port.CatalogReader
	pool    *pgxpool.Pool
}

func TestInventoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(inventoryRepositorySuite))
}

func (suite *inventoryRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.ledger = repository.NewInventory(suite.pool)
	suite.catalog = repository.NewCatalog(suite.pool)
}

func (suite *inventoryRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *inventoryRepositorySuite) TestReserveThenRelease() {
	t := suite.T()
	ctx := t.Context()

	variant := seedVariant(t, suite.pool, 10, "19.99")

	price, err := suite.ledger.Reserve(ctx, variant.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "19.99", price.Amount.StringFixed(2))
	assert.Equal(t, "USD", price.Currency.String())

	got, err := suite.catalog.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got.Stock)

	// Releasing the same quantity restores the prior stock.
	err = suite.ledger.Release(ctx, variant.ID, 3)
	require.NoError(t, err)

	got, err = suite.catalog.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(10), got.Stock)
}

func (suite *inventoryRepositorySuite) TestReserveInsufficientStock() {
	t := suite.T()
	ctx := t.Context()

	variant := seedVariant(t, suite.pool, 2, "5.00")

	_, err := suite.ledger.Reserve(ctx, variant.ID, 3)

	var stockErr domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, variant.ID, stockErr.VariantID)
	assert.Equal(t, int32(3), stockErr.Requested)
	assert.Equal(t, int32(2), stockErr.Available)

	// Stock is untouched by the failed attempt.
	got, err := suite.catalog.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), got.Stock)
}

func (suite *inventoryRepositorySuite) TestReserveUnknownVariant() {
	t := suite.T()

	_, err := suite.ledger.Reserve(t.Context(), uuid.New(), 1)

	var notFoundErr domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func (suite *inventoryRepositorySuite) TestReserveInvalidQuantity() {
	t := suite.T()

	variant := seedVariant(t, suite.pool, 5, "5.00")

	_, err := suite.ledger.Reserve(t.Context(), variant.ID, 0)

	var validationErr domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

// Concurrent reservations against the same variant must never grant
// more than the available stock in total.
func (suite *inventoryRepositorySuite) TestConcurrentReserveNoOversell() {
	t := suite.T()
	ctx := t.Context()

	const stock = 5
	const attempts = 10

	variant := seedVariant(t, suite.pool, stock, "9.99")

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = suite.ledger.Reserve(ctx, variant.ID, 1)
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}

		var stockErr domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
	}

	assert.Equal(t, stock, successes)

	got, err := suite.catalog.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Stock)
}

// A reservation made inside a failed unit of work must roll back.
func (suite *inventoryRepositorySuite) TestUnitOfWorkRollsBackReservation() {
	t := suite.T()
	ctx := t.Context()

	variant := seedVariant(t, suite.pool, 4, "9.99")

	uow := repository.NewUnitOfWork(suite.pool)

	err := uow.Run(ctx, func(tx port.Tx) error {
		if _, err := tx.Inventory().Reserve(ctx, variant.ID, 4); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := suite.catalog.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(4), got.Stock)
}
