package catalog

import (
	_ "embed"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

//go:embed fallback.json
var fallbackJSON []byte

type fallbackEntry struct {
	models.Product
	Specs  *models.SpecsRecord   `json:"specs"`
	Sizes  []models.SizeVariant  `json:"sizes"`
	Colors []models.ColorVariant `json:"colors"`
}

var fallbackDetails = mustParseFallback(fallbackJSON)

func mustParseFallback(data []byte) []models.ProductDetail {
	details, err := parseFallback(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in catalog: %v", err))
	}
	return details
}

func parseFallback(data []byte) ([]models.ProductDetail, error) {
	var entries []fallbackEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	details := make([]models.ProductDetail, 0, len(entries))
	for _, e := range entries {
		p := e.Product.Normalize()
		p.Specs = models.DecodeSpecs(p.Category, e.Specs)
		for i := range e.Sizes {
			e.Sizes[i].ProductID = p.ID
		}
		for i := range e.Colors {
			e.Colors[i].ProductID = p.ID
		}
		details = append(details, models.ProductDetail{
			Product: p,
			Sizes:   nonNilSizes(e.Sizes),
			Colors:  FillColorHex(e.Colors),
		})
	}
	return details, nil
}

// Fallback returns the built-in catalog.
func Fallback() []models.Product {
	out := make([]models.Product, len(fallbackDetails))
	for i, d := range fallbackDetails {
		out[i] = d.Product
	}
	return out
}

// FallbackDetail returns the built-in product with the given id.
func FallbackDetail(id string) (models.ProductDetail, bool) {
	for _, d := range fallbackDetails {
		if d.ID == id {
			return cloneDetail(d), true
		}
	}
	return models.ProductDetail{}, false
}

func nonNilSizes(s []models.SizeVariant) []models.SizeVariant {
	if s == nil {
		return []models.SizeVariant{}
	}
	return s
}
