// Package pricing computes line totals and cart summaries in decimal currency units.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

// ErrNegativePrice is returned when a base price or size modifier is below zero.
var ErrNegativePrice = errors.New("price cannot be negative")

// DefaultTaxRate is the VAT applied at checkout.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// LineTotal returns the product's base price plus the size modifier. A nil size adds nothing.
func LineTotal(p models.Product, size *models.SizeVariant) (decimal.Decimal, error) {
	if p.BasePrice.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	total := p.BasePrice
	if size != nil {
		if size.PriceModifier.IsNegative() {
			return decimal.Zero, ErrNegativePrice
		}
		total = total.Add(size.PriceModifier)
	}
	return total, nil
}

// Summary holds the cart totals.
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// Summarize adds up item totals and applies taxRate. Nothing is rounded here.
func Summarize(items []models.CartLineItem, taxRate decimal.Decimal) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	tax := subtotal.Mul(taxRate)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
		TaxRate:  taxRate,
	}
}

// DisplaySummary is a Summary rounded for presentation.
type DisplaySummary struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// Display rounds each amount to two decimals.
func (s Summary) Display() DisplaySummary {
	return DisplaySummary{
		Subtotal: Format(s.Subtotal),
		Tax:      Format(s.Tax),
		Total:    Format(s.Total),
	}
}

// Format renders an amount with two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
