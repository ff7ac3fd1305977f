package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

func TestFallbackCatalogIsWellFormed(t *testing.T) {
	products := Fallback()
	require.Len(t, products, 8)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.ListingType.Valid(), "%s listing type", p.ID)
		assert.NotEmpty(t, p.Images(), "%s images", p.ID)
		assert.False(t, p.BasePrice.IsNegative(), "%s price", p.ID)
	}
}

func TestFallbackDetailCarriesTypedSpecsAndVariants(t *testing.T) {
	d, ok := FallbackDetail("arabic-ground-majlis")
	require.True(t, ok)

	specs, ok := d.Specs.(models.SeatingSpecs)
	require.True(t, ok, "got %T", d.Specs)
	assert.Equal(t, 4, specs.Pieces)
	assert.Equal(t, "Velvet & Sadu", specs.Material.Name(models.LocaleEN))

	require.NotEmpty(t, d.Sizes)
	assert.Equal(t, "arabic-ground-majlis", d.Sizes[0].ProductID)
	require.NotEmpty(t, d.Colors)
	assert.Equal(t, "#800000", d.Colors[0].HexCode)
}

func TestFallbackDetailReturnsCopies(t *testing.T) {
	d, ok := FallbackDetail("arabic-shadow-tent")
	require.True(t, ok)
	d.Sizes[0].NameEN = "changed"

	again, _ := FallbackDetail("arabic-shadow-tent")
	assert.NotEqual(t, "changed", again.Sizes[0].NameEN)
}

func TestFallbackDetailUnknown(t *testing.T) {
	_, ok := FallbackDetail("nope")
	assert.False(t, ok)
}

func TestParseFallbackRejectsMalformedInput(t *testing.T) {
	_, err := parseFallback([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Chairs", CategoryLabel("Chairs", models.LocaleEN))
	assert.Equal(t, "كراسي", CategoryLabel("Chairs", models.LocaleAR))
	assert.Equal(t, "Tents2025", CategoryLabel("Tents2025", models.LocaleAR))
}

func TestFillColorHex(t *testing.T) {
	colors := FillColorHex([]models.ColorVariant{
		{NameEN: "Navy"},
		{NameEN: "Teal"},
		{NameEN: "Gold", HexCode: "#ABCDEF"},
	})
	assert.Equal(t, "#000080", colors[0].HexCode)
	assert.Empty(t, colors[1].HexCode)
	assert.Equal(t, "#ABCDEF", colors[2].HexCode)
}
