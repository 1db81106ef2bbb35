package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/repository"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_product_variants.up.sql",
			"../migrations/02_cart_items.up.sql",
			"../migrations/03_orders.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func seedVariant(t *testing.T, pool *pgxpool.Pool, stock int32, price string) domain.Variant {
	t.Helper()

	variant := domain.Variant{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: gofakeit.ProductName(),
		Color:       gofakeit.Color(),
		Size:        "L",
		SKU:         gofakeit.LetterN(8),
		Price:       usd(t, price),
		Stock:       stock,
	}

	err := repository.SeedVariant(t.Context(), pool, variant)
	require.NoError(t, err)

	return variant
}

func usd(t *testing.T, amount string) domain.Money {
	t.Helper()

	parsedAmount, err := decimal.NewFromString(amount)
	require.NoError(t, err)

	parsedCurrency, err := currency.ParseISO("USD")
	require.NoError(t, err)

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}
}

func randomShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		ReceiverName: gofakeit.Name(),
		Address:      gofakeit.Address().Address,
		Phone:        gofakeit.Phone(),
	}
}
