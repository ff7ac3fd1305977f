package catalog

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

func product(id, nameEN, nameAR, category, price string, listing models.ListingType) models.Product {
	return models.Product{
		ID:          id,
		NameEN:      nameEN,
		NameAR:      nameAR,
		Category:    category,
		BasePrice:   decimal.RequireFromString(price),
		ListingType: listing,
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

var sample = []models.Product{
	product("tent", "Arabic Shadow Tent", "خيمة عربية", "ArabicTent", "45", models.ListingRental),
	product("chair", "Gold Infinity Chair", "كرسي ذهبي", "Chairs", "2", models.ListingRental),
	product("chair-lower", "Plain Chair", "كرسي", "chairs", "1.5", models.ListingSales),
	product("hanging", "Heritage Hanging", "تعليقة تراثية", "Heritage", "2.5", models.ListingSales),
	product("generator", "Silent Generator", "", "Generators", "650", models.ListingRental),
	product("heater", "", "دفاية هرمية", "Misc", "15", models.ListingRental),
}

func TestFilterDefaultQueryKeepsEverythingUnderCeiling(t *testing.T) {
	got := Filter(sample, DefaultQuery(models.LocaleEN))
	assert.Equal(t, []string{"tent", "chair", "chair-lower", "hanging", "heater"}, ids(got))
}

func TestFilterTextIsCaseInsensitive(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.Text = "CHAIR"
	assert.Equal(t, []string{"chair", "chair-lower"}, ids(Filter(sample, q)))

	q.Text = "gold infinity"
	assert.Equal(t, []string{"chair"}, ids(Filter(sample, q)))
}

func TestFilterTextUsesLocaleName(t *testing.T) {
	q := DefaultQuery(models.LocaleAR)
	q.Text = "كرسي"
	assert.Equal(t, []string{"chair", "chair-lower"}, ids(Filter(sample, q)))

	q.Text = "chair"
	assert.Empty(t, Filter(sample, q))
}

func TestFilterTextFallsBackToOtherLocaleName(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.Text = "دفاية"
	assert.Equal(t, []string{"heater"}, ids(Filter(sample, q)))

	q = DefaultQuery(models.LocaleAR)
	q.MaxPrice = decimal.NewFromInt(1000)
	q.Text = "silent"
	assert.Equal(t, []string{"generator"}, ids(Filter(sample, q)))
}

func TestFilterCategoryIsExact(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.Category = "Chairs"
	assert.Equal(t, []string{"chair"}, ids(Filter(sample, q)))

	q.Category = "chairs"
	assert.Equal(t, []string{"chair-lower"}, ids(Filter(sample, q)))

	q.Category = ""
	assert.Len(t, Filter(sample, q), 5)
}

func TestFilterPriceBounds(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.MaxPrice = decimal.RequireFromString("2.5")
	assert.Equal(t, []string{"chair", "chair-lower", "hanging"}, ids(Filter(sample, q)))

	q.MinPrice = decimal.NewFromInt(2)
	assert.Equal(t, []string{"chair", "hanging"}, ids(Filter(sample, q)))

	q = DefaultQuery(models.LocaleEN)
	q.MaxPrice = decimal.NewFromInt(1000)
	assert.Contains(t, ids(Filter(sample, q)), "generator")
}

func TestFilterListingType(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.ListingType = models.ListingSales
	assert.Equal(t, []string{"chair-lower", "hanging"}, ids(Filter(sample, q)))

	q.ListingType = models.ListingRental
	assert.Equal(t, []string{"tent", "chair", "heater"}, ids(Filter(sample, q)))
}

func TestFilterCombinesConditions(t *testing.T) {
	q := DefaultQuery(models.LocaleEN)
	q.Text = "chair"
	q.ListingType = models.ListingSales
	assert.Equal(t, []string{"chair-lower"}, ids(Filter(sample, q)))
}

func TestFilterEmptyCatalog(t *testing.T) {
	got := Filter(nil, DefaultQuery(models.LocaleAR))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func randomQuery(r *rand.Rand) Query {
	texts := []string{"", "chair", "TENT", "a", "كرسي", "zzz"}
	cats := []string{CategoryAll, "Chairs", "chairs", "Misc", "Unknown"}
	listings := []models.ListingType{ListingAll, models.ListingRental, models.ListingSales}
	locales := []models.Locale{models.LocaleAR, models.LocaleEN}

	return Query{
		Text:        texts[r.Intn(len(texts))],
		Category:    cats[r.Intn(len(cats))],
		MinPrice:    decimal.NewFromInt(int64(r.Intn(5))),
		MaxPrice:    decimal.NewFromInt(int64(r.Intn(700))),
		ListingType: listings[r.Intn(len(listings))],
		Locale:      locales[r.Intn(len(locales))],
	}
}

func TestFilterIsIdempotentAndKeepsOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	position := make(map[string]int, len(sample))
	for i, p := range sample {
		position[p.ID] = i
	}

	for i := 0; i < 500; i++ {
		q := randomQuery(r)
		once := Filter(sample, q)
		twice := Filter(once, q)
		assert.Equal(t, ids(once), ids(twice), "query %+v", q)
		assert.Equal(t, ids(once), ids(Filter(sample, q)), "query %+v not deterministic", q)

		for j := 1; j < len(once); j++ {
			assert.Less(t, position[once[j-1].ID], position[once[j].ID], "query %+v reordered output", q)
		}
	}
}
