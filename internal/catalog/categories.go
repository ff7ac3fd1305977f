package catalog

import "github.com/als344572-ai/Rahal-store/internal/models"

// Category is a storefront category with labels in both locales.
type Category struct {
	ID string `json:"id"`
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Label returns the category label for the locale.
func (c Category) Label(l models.Locale) string {
	return l.Pick(c.AR, c.EN)
}

// CategoryAll matches every category in a filter.
const CategoryAll = "all"

var categories = []Category{
	{ID: "HeritageTriple", AR: "تعليقات أثرية ثلاثية", EN: "Triple Heritage Hangings"},
	{ID: "Heritage", AR: "تعليقات أثرية", EN: "Heritage Hangings"},
	{ID: "GroundSeating", AR: "جلسات أرضية", EN: "Ground Seating"},
	{ID: "ArabicTent", AR: "خيمة عربية ظلالاية", EN: "Arabic Shadow Tents"},
	{ID: "Chairs", AR: "كراسي", EN: "Chairs"},
	{ID: "Stage", AR: "مسرح", EN: "Stages"},
	{ID: "AC", AR: "مكيفات", EN: "Air Conditioning"},
	{ID: "Generators", AR: "مولدات", EN: "Generators"},
	{ID: "Misc", AR: "متنوع", EN: "Miscellaneous"},
}

// Categories returns the storefront categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryLabel returns the localized label for id, or id itself when the category is unknown.
func CategoryLabel(id string, l models.Locale) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Label(l)
		}
	}
	return id
}

// AdminFamilies are the categories offered when provisioning a product.
var AdminFamilies = []Category{
	{ID: "Tent", AR: "خيمة", EN: "Tent (Large Structures)"},
	{ID: "Chair", AR: "كرسي", EN: "Chair (Seating Assets)"},
	{ID: "Seating", AR: "جلسة / مجلس", EN: "Seating / Majlis (Arrangements)"},
	{ID: "Misc", AR: "متنوع", EN: "Miscellaneous (Accessories)"},
}

var colorTokens = map[string]string{
	"White":  "#FFFFFF",
	"Black":  "#1A1A1A",
	"Red":    "#C41E3A",
	"Maroon": "#800000",
	"Beige":  "#F5F5DC",
	"Gold":   "#FFD700",
	"Green":  "#006B3C",
	"Navy":   "#000080",
	"Brown":  "#5C4033",
	"Silver": "#C0C0C0",
}

// ColorHex returns the display token for an English color name.
func ColorHex(name string) (string, bool) {
	hex, ok := colorTokens[name]
	return hex, ok
}

// FillColorHex sets missing hex codes from the color table.
func FillColorHex(colors []models.ColorVariant) []models.ColorVariant {
	out := make([]models.ColorVariant, len(colors))
	for i, c := range colors {
		if c.HexCode == "" {
			if hex, ok := ColorHex(c.NameEN); ok {
				c.HexCode = hex
			}
		}
		out[i] = c
	}
	return out
}
