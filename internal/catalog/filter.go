package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

// ListingAll matches both listing types in a filter.
const ListingAll models.ListingType = "all"

// DefaultMaxPrice is the price ceiling when none is given.
var DefaultMaxPrice = decimal.NewFromInt(500)

// Query selects the visible part of the catalog.
// An empty Category or ListingType behaves like "all".
type Query struct {
	Text        string
	Category    string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	ListingType models.ListingType
	Locale      models.Locale
}

// DefaultQuery matches the whole catalog up to DefaultMaxPrice.
func DefaultQuery(l models.Locale) Query {
	return Query{
		Category:    CategoryAll,
		MinPrice:    decimal.Zero,
		MaxPrice:    DefaultMaxPrice,
		ListingType: ListingAll,
		Locale:      l,
	}
}

// Filter returns the products matching every condition in q, in catalog order.
func Filter(products []models.Product, q Query) []models.Product {
	m := newMatcher(q)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

type matcher struct {
	q      Query
	needle string
	fold   cases.Caser
}

func newMatcher(q Query) *matcher {
	fold := cases.Fold()
	return &matcher{q: q, needle: fold.String(q.Text), fold: fold}
}

func (m *matcher) match(p models.Product) bool {
	return m.matchText(p) &&
		m.matchCategory(p) &&
		m.matchPrice(p) &&
		m.matchListing(p)
}

func (m *matcher) matchText(p models.Product) bool {
	if m.needle == "" {
		return true
	}
	name := m.fold.String(p.Name(m.q.Locale))
	return strings.Contains(name, m.needle)
}

// Category tags compare case-sensitively.
func (m *matcher) matchCategory(p models.Product) bool {
	return m.q.Category == "" || m.q.Category == CategoryAll || p.Category == m.q.Category
}

func (m *matcher) matchPrice(p models.Product) bool {
	return p.BasePrice.GreaterThanOrEqual(m.q.MinPrice) && p.BasePrice.LessThanOrEqual(m.q.MaxPrice)
}

func (m *matcher) matchListing(p models.Product) bool {
	return m.q.ListingType == "" || m.q.ListingType == ListingAll || p.ListingType == m.q.ListingType
}
