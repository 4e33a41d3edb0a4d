// Package i18n holds the fixed Ukrainian-to-English lookup tables used when a
// legacy product field is upgraded to a bilingual value at edit time. Unknown
// values pass through unchanged in both languages.
package i18n

import "blackcoffee-backend/internal/models"

var categoryTranslations = map[string]string{
	"Арабіка":     "Arabica",
	"Робуста":     "Robusta",
	"Купажі":      "Blends",
	"Без кофеїну": "Decaf",
}

var typeTranslations = map[string]string{
	"Зерна":    "Beans",
	"Мелена":   "Ground",
	"Розчинна": "Instant",
}

var weightTranslations = map[string]string{
	"100г": "100g",
	"250г": "250g",
	"500г": "500g",
	"1кг":  "1kg",
}

func TranslateCategory(uk string) string {
	if en, ok := categoryTranslations[uk]; ok {
		return en
	}
	return uk
}

func TranslateType(uk string) string {
	if en, ok := typeTranslations[uk]; ok {
		return en
	}
	return uk
}

func TranslateWeight(uk string) string {
	if en, ok := weightTranslations[uk]; ok {
		return en
	}
	return uk
}

// upgrade fills in the English side of a field that came from a legacy string
// document. Decoding a legacy string sets both sides to the same value, so a
// field only needs upgrading when the sides are equal and a translation exists.
func upgrade(lt models.LocalizedText, translate func(string) string) models.LocalizedText {
	if lt.Uk != "" && lt.En == lt.Uk {
		lt.En = translate(lt.Uk)
	}
	return lt
}

// NormalizeProduct upgrades the select-driven fields of a product that may
// still carry legacy single-language values. Name, description and origin are
// free text and stay as entered.
func NormalizeProduct(p *models.Product) {
	p.Category = upgrade(p.Category, TranslateCategory)
	p.Type = upgrade(p.Type, TranslateType)
	p.Weight = upgrade(p.Weight, TranslateWeight)
}
