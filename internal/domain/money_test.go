package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

func money(t *testing.T, amount string, code string) domain.Money {
	t.Helper()

	parsedAmount, err := decimal.NewFromString(amount)
	require.NoError(t, err)

	parsedCurrency, err := currency.ParseISO(code)
	require.NoError(t, err)

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}
}

func TestMoney_Mul(t *testing.T) {
	price := money(t, "10.00", "USD")

	total := price.Mul(3)
	assert.Equal(t, "30.00", total.Amount.StringFixed(2))
	assert.Equal(t, "USD", total.Currency.String())
}

func TestMoney_Add(t *testing.T) {
	sum, err := money(t, "10.00", "USD").Add(money(t, "2.50", "USD"))
	require.NoError(t, err)
	assert.Equal(t, "12.50", sum.Amount.StringFixed(2))

	_, err = money(t, "10.00", "USD").Add(money(t, "2.50", "EUR"))
	require.Error(t, err)
}

func TestMoney_AddToZero(t *testing.T) {
	var total domain.Money

	total, err := total.Add(money(t, "5.00", "EUR"))
	require.NoError(t, err)
	assert.Equal(t, "5.00", total.Amount.StringFixed(2))
	assert.Equal(t, "EUR", total.Currency.String())
}

func TestCart_Total(t *testing.T) {
	cart := domain.Cart{
		OwnerID: "user-1",
		Items: []domain.CartItem{
			{Quantity: 3, Price: money(t, "10.00", "USD")},
			{Quantity: 1, Price: money(t, "5.50", "USD")},
		},
	}

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, "35.50", total.Amount.StringFixed(2))
	assert.Equal(t, 2, cart.ItemCount())
	assert.False(t, cart.IsEmpty())
}
