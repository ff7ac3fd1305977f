package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingType separates rental assets from items for sale.
type ListingType string

const (
	ListingRental ListingType = "rental"
	ListingSales  ListingType = "sales"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	return t == ListingRental || t == ListingSales
}

// Product represents a catalog entry
type Product struct {
	ID            string          `json:"id"`
	NameAR        string          `json:"name_ar"`
	NameEN        string          `json:"name_en"`
	DescriptionAR string          `json:"description_ar,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	Category      string          `json:"category"`
	BasePrice     decimal.Decimal `json:"base_price"`
	ImageURL      string          `json:"image_url"`
	Gallery       []string        `json:"gallery"`
	Specs         Specs           `json:"specs,omitempty"`
	ListingType   ListingType     `json:"listingType"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
}

// Name returns the display name for the locale, falling back to the other locale.
func (p Product) Name(l Locale) string {
	return l.PickWithFallback(p.NameAR, p.NameEN)
}

// Description returns the description for the locale, falling back to the other locale.
func (p Product) Description(l Locale) string {
	return l.PickWithFallback(p.DescriptionAR, p.DescriptionEN)
}

// Images returns the gallery, or the primary image when no gallery is set.
func (p Product) Images() []string {
	if len(p.Gallery) > 0 {
		out := make([]string, len(p.Gallery))
		copy(out, p.Gallery)
		return out
	}
	return []string{p.ImageURL}
}

// Normalize fills the optional fields that rows from the store may omit.
func (p Product) Normalize() Product {
	if p.ListingType == "" {
		p.ListingType = ListingRental
	}
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	return p
}

// ProductDetail is a product together with its selectable variants.
type ProductDetail struct {
	Product
	Sizes  []SizeVariant  `json:"sizes"`
	Colors []ColorVariant `json:"colors"`
}

// Size returns the size with the given id. An empty id selects the first size.
func (d ProductDetail) Size(id string) (*SizeVariant, bool) {
	if id == "" {
		if len(d.Sizes) == 0 {
			return nil, true
		}
		s := d.Sizes[0]
		return &s, true
	}
	for i := range d.Sizes {
		if d.Sizes[i].ID == id {
			s := d.Sizes[i]
			return &s, true
		}
	}
	return nil, false
}

// NewProduct carries the fields an administrator supplies when provisioning a product.
type NewProduct struct {
	NameAR        string          `json:"name_ar" binding:"required"`
	NameEN        string          `json:"name_en" binding:"required"`
	DescriptionAR string          `json:"description_ar"`
	DescriptionEN string          `json:"description_en"`
	Category      string          `json:"category" binding:"required"`
	BasePrice     decimal.Decimal `json:"base_price"`
	ImageURL      string          `json:"image_url"`
	Gallery       []string        `json:"gallery"`
	ListingType   ListingType     `json:"listingType"`
	Sizes         []NewSize       `json:"sizes" binding:"dive"`
	Colors        []NewColor      `json:"colors" binding:"dive"`
	Specs         SpecsRecord     `json:"specs"`
}

// ProductUpdate carries the fields an administrator changes on an existing
// product. Nil fields keep their stored value.
type ProductUpdate struct {
	NameAR        *string          `json:"name_ar" binding:"omitnil,min=1"`
	NameEN        *string          `json:"name_en" binding:"omitnil,min=1"`
	DescriptionAR *string          `json:"description_ar"`
	DescriptionEN *string          `json:"description_en"`
	Category      *string          `json:"category" binding:"omitnil,min=1"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	ImageURL      *string          `json:"image_url" binding:"omitnil,min=1"`
	Gallery       []string         `json:"gallery"`
	ListingType   *ListingType     `json:"listingType"`
}

// NewSize is a size variant in a provisioning request.
type NewSize struct {
	NameAR        string          `json:"name_ar" binding:"required"`
	NameEN        string          `json:"name_en" binding:"required"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// NewColor is a color variant in a provisioning request.
type NewColor struct {
	NameAR  string `json:"name_ar"`
	NameEN  string `json:"name_en" binding:"required"`
	HexCode string `json:"hex_code" binding:"omitempty,hexcolor"`
}
