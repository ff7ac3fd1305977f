package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineTotal(t *testing.T) {
	p := models.Product{ID: "majlis", BasePrice: dec("18.0")}

	total, err := LineTotal(p, nil)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("18")), "got %s", total)

	total, err = LineTotal(p, &models.SizeVariant{PriceModifier: dec("4.5")})
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("22.5")), "got %s", total)

	total, err = LineTotal(p, &models.SizeVariant{PriceModifier: decimal.Zero})
	require.NoError(t, err)
	assert.True(t, total.Equal(p.BasePrice))
}

func TestLineTotalRejectsNegativePrices(t *testing.T) {
	_, err := LineTotal(models.Product{BasePrice: dec("-1")}, nil)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = LineTotal(models.Product{BasePrice: dec("10")}, &models.SizeVariant{PriceModifier: dec("-0.01")})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestSummarize(t *testing.T) {
	items := []models.CartLineItem{
		{ID: "1", TotalPrice: dec("18.0")},
		{ID: "2", TotalPrice: dec("12.5")},
	}

	s := Summarize(items, DefaultTaxRate)

	assert.True(t, s.Subtotal.Equal(dec("30.5")), "subtotal %s", s.Subtotal)
	assert.True(t, s.Tax.Equal(dec("3.05")), "tax %s", s.Tax)
	assert.True(t, s.Total.Equal(dec("33.55")), "total %s", s.Total)

	d := s.Display()
	assert.Equal(t, "30.50", d.Subtotal)
	assert.Equal(t, "3.05", d.Tax)
	assert.Equal(t, "33.55", d.Total)
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil, DefaultTaxRate)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, "0.00", s.Display().Total)
}

func TestSummarizeDoesNotDriftAcrossManyItems(t *testing.T) {
	items := make([]models.CartLineItem, 1000)
	for i := range items {
		items[i] = models.CartLineItem{TotalPrice: dec("0.1")}
	}

	s := Summarize(items, DefaultTaxRate)

	assert.True(t, s.Subtotal.Equal(dec("100")), "subtotal %s", s.Subtotal)
	assert.True(t, s.Total.Equal(dec("110")), "total %s", s.Total)
}

func TestFormatRoundsOnlyForDisplay(t *testing.T) {
	s := Summarize([]models.CartLineItem{{TotalPrice: dec("2.345")}}, DefaultTaxRate)
	assert.True(t, s.Tax.Equal(dec("0.2345")))
	assert.Equal(t, "0.23", Format(s.Tax))
}
