package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	l, ok := ParseLocale(" EN ")
	assert.True(t, ok)
	assert.Equal(t, LocaleEN, l)

	l, ok = ParseLocale("ar")
	assert.True(t, ok)
	assert.Equal(t, LocaleAR, l)

	_, ok = ParseLocale("fr")
	assert.False(t, ok)
}

func TestLocaleDirectionAndToggle(t *testing.T) {
	assert.Equal(t, "rtl", LocaleAR.Dir())
	assert.Equal(t, "ltr", LocaleEN.Dir())
	assert.Equal(t, LocaleEN, LocaleAR.Other())
	assert.Equal(t, LocaleAR, LocaleEN.Other())
	assert.Equal(t, LocaleAR, LocaleAR.Other().Other())
}

func TestPickWithFallback(t *testing.T) {
	assert.Equal(t, "خيمة", LocaleAR.PickWithFallback("خيمة", "Tent"))
	assert.Equal(t, "Tent", LocaleEN.PickWithFallback("خيمة", "Tent"))
	assert.Equal(t, "Tent", LocaleAR.PickWithFallback("", "Tent"))
	assert.Equal(t, "خيمة", LocaleEN.PickWithFallback("خيمة", ""))
	assert.Equal(t, "", LocaleEN.Pick("خيمة", ""))
}

func TestProductImagesFallsBackToPrimaryImage(t *testing.T) {
	p := Product{ImageURL: "main.png"}
	assert.Equal(t, []string{"main.png"}, p.Images())

	p.Gallery = []string{"a.png", "b.png"}
	images := p.Images()
	assert.Equal(t, []string{"a.png", "b.png"}, images)

	images[0] = "changed.png"
	assert.Equal(t, "a.png", p.Gallery[0])
}

func TestProductNormalize(t *testing.T) {
	p := Product{ID: "x"}.Normalize()
	assert.Equal(t, ListingRental, p.ListingType)
	assert.NotNil(t, p.Gallery)

	p = Product{ListingType: ListingSales}.Normalize()
	assert.Equal(t, ListingSales, p.ListingType)
}

func TestProductDetailSize(t *testing.T) {
	d := ProductDetail{Sizes: []SizeVariant{
		{ID: "s", NameEN: "Small"},
		{ID: "l", NameEN: "Large", PriceModifier: decimal.NewFromInt(10)},
	}}

	s, ok := d.Size("")
	require.True(t, ok)
	assert.Equal(t, "s", s.ID)

	s, ok = d.Size("l")
	require.True(t, ok)
	assert.True(t, s.PriceModifier.Equal(decimal.NewFromInt(10)))

	_, ok = d.Size("xl")
	assert.False(t, ok)

	s, ok = ProductDetail{}.Size("")
	assert.True(t, ok)
	assert.Nil(t, s)
}

func TestFamilyForCategory(t *testing.T) {
	cases := map[string]SpecFamily{
		"ArabicTent":    FamilyTent,
		"Tent":          FamilyTent,
		"Chairs":        FamilyChair,
		"GroundSeating": FamilySeating,
		"Majlis":        FamilySeating,
		"Generators":    FamilyGeneric,
		"":              FamilyGeneric,
	}
	for category, want := range cases {
		assert.Equal(t, want, FamilyForCategory(category), category)
	}
}

func TestDecodeSpecsKeepsOnlyFamilyFields(t *testing.T) {
	r := &SpecsRecord{Dimensions: "6x6m", Layers: 2, Pieces: 9, Foldable: true, MaterialEN: "Canvas"}

	tent, ok := DecodeSpecs("ArabicTent", r).(TentSpecs)
	require.True(t, ok)
	assert.Equal(t, TentSpecs{Material: Material{MaterialEN: "Canvas"}, Dimensions: "6x6m", Layers: 2}, tent)

	chair, ok := DecodeSpecs("Chairs", r).(ChairSpecs)
	require.True(t, ok)
	assert.True(t, chair.Foldable)

	_, ok = DecodeSpecs("AC", r).(GenericSpecs)
	assert.True(t, ok)

	assert.Nil(t, DecodeSpecs("Chairs", nil))
}

func TestEncodeSpecsRoundTrip(t *testing.T) {
	specs := []Specs{
		TentSpecs{Material: Material{MaterialAR: "قماش"}, Dimensions: "10x10m", Layers: 3},
		ChairSpecs{Foldable: true},
		SeatingSpecs{Pieces: 4, TotalDimensions: "3x3m"},
		GenericSpecs{Material: Material{MaterialEN: "Steel"}},
	}
	categories := []string{"Tent", "Chairs", "GroundSeating", "Misc"}

	for i, s := range specs {
		assert.Equal(t, s, DecodeSpecs(categories[i], EncodeSpecs(s)))
	}
	assert.Nil(t, EncodeSpecs(nil))
}

func TestSpecsJSONCarriesFamily(t *testing.T) {
	p := Product{ID: "c", Specs: ChairSpecs{Material: Material{MaterialEN: "Resin"}, Foldable: false}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out struct {
		Specs map[string]any `json:"specs"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "chair", out.Specs["family"])
	assert.Equal(t, "Resin", out.Specs["material_en"])
	assert.Equal(t, false, out.Specs["foldable"])
}

func TestUserIsAdmin(t *testing.T) {
	var nobody *User
	assert.False(t, nobody.IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
