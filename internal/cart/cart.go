// Package cart holds the shopper's line items between browsing and checkout.
package cart

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
)

var (
	ErrMissingDates = errors.New("start and end dates are required")
	ErrUnknownSize  = errors.New("unknown size")
	ErrEmpty        = errors.New("cart is empty")
	ErrClaimed      = errors.New("cart is already being checked out")
)

// NewLineItem prices a product for a date range and snapshots its display fields.
// An empty sizeID selects the first size.
func NewLineItem(d models.ProductDetail, sizeID, color, start, end string, l models.Locale) (models.CartLineItem, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return models.CartLineItem{}, ErrMissingDates
	}

	size, ok := d.Size(sizeID)
	if !ok {
		return models.CartLineItem{}, ErrUnknownSize
	}

	total, err := pricing.LineTotal(d.Product, size)
	if err != nil {
		return models.CartLineItem{}, err
	}

	item := models.CartLineItem{
		ID:            uuid.NewString(),
		ProductID:     d.ID,
		ProductNameAR: d.NameAR,
		ProductNameEN: d.NameEN,
		ProductImage:  d.Images()[0],
		Color:         color,
		StartDate:     start,
		EndDate:       end,
		TotalPrice:    total,
	}
	if size != nil {
		item.SizeName = size.Label(l)
	}
	return item, nil
}

// Cart is an ordered list of line items. It is safe for concurrent use.
// At most one checkout can hold a claim on it at a time.
type Cart struct {
	mu      sync.Mutex
	items   []models.CartLineItem
	claimed bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends item.
func (c *Cart) Add(item models.CartLineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Remove deletes the item with the given id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the items in insertion order.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Claim reserves the current items for one checkout and returns them.
// It fails with ErrClaimed while another claim is open. Every successful
// Claim must be ended by Settle or Release.
func (c *Cart) Claim() ([]models.CartLineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.claimed {
		return nil, ErrClaimed
	}
	if len(c.items) == 0 {
		return nil, ErrEmpty
	}
	c.claimed = true

	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Settle ends the open claim and removes the charged items.
// Items added while the claim was open stay in the cart.
func (c *Cart) Settle(charged []models.CartLineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	done := make(map[string]struct{}, len(charged))
	for _, item := range charged {
		done[item.ID] = struct{}{}
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if _, ok := done[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.claimed = false
}

// Release ends the open claim and keeps every item.
func (c *Cart) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.claimed = false
}

// Summary totals the current items.
func (c *Cart) Summary(taxRate decimal.Decimal) pricing.Summary {
	return pricing.Summarize(c.Items(), taxRate)
}
