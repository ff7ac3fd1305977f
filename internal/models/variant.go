package models

import "github.com/shopspring/decimal"

// SizeVariant adjusts a product's base price.
type SizeVariant struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	NameAR        string          `json:"name_ar"`
	NameEN        string          `json:"name_en"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// Label returns the localized size label.
func (s SizeVariant) Label(l Locale) string {
	return l.PickWithFallback(s.NameAR, s.NameEN)
}

// ColorVariant is a selectable color of a product.
type ColorVariant struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	NameAR    string `json:"name_ar"`
	NameEN    string `json:"name_en"`
	HexCode   string `json:"hex_code"`
}

// Label returns the localized color label.
func (c ColorVariant) Label(l Locale) string {
	return l.PickWithFallback(c.NameAR, c.NameEN)
}
