package i18n

import (
	"testing"

	"blackcoffee-backend/internal/models"
)

func TestTranslateKnownValues(t *testing.T) {
	cases := []struct {
		fn       func(string) string
		uk, want string
	}{
		{TranslateCategory, "Арабіка", "Arabica"},
		{TranslateCategory, "Робуста", "Robusta"},
		{TranslateCategory, "Купажі", "Blends"},
		{TranslateCategory, "Без кофеїну", "Decaf"},
		{TranslateType, "Зерна", "Beans"},
		{TranslateType, "Мелена", "Ground"},
		{TranslateType, "Розчинна", "Instant"},
		{TranslateWeight, "100г", "100g"},
		{TranslateWeight, "250г", "250g"},
		{TranslateWeight, "500г", "500g"},
		{TranslateWeight, "1кг", "1kg"},
	}
	for _, c := range cases {
		if got := c.fn(c.uk); got != c.want {
			t.Errorf("translate(%q) = %q, want %q", c.uk, got, c.want)
		}
	}
}

func TestTranslateUnknownPassesThrough(t *testing.T) {
	if got := TranslateCategory("Ефіопська"); got != "Ефіопська" {
		t.Errorf("got %q", got)
	}
	if got := TranslateWeight("2кг"); got != "2кг" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeProductUpgradesLegacyFields(t *testing.T) {
	p := &models.Product{
		Category: models.LocalizedText{Uk: "Арабіка", En: "Арабіка"},
		Type:     models.LocalizedText{Uk: "Зерна", En: "Зерна"},
		Weight:   models.LocalizedText{Uk: "250г", En: "250г"},
	}

	NormalizeProduct(p)

	if p.Category.En != "Arabica" || p.Type.En != "Beans" || p.Weight.En != "250g" {
		t.Errorf("legacy fields not upgraded: %+v %+v %+v", p.Category, p.Type, p.Weight)
	}
	if p.Category.Uk != "Арабіка" {
		t.Errorf("ukrainian side must not change, got %q", p.Category.Uk)
	}
}

func TestNormalizeProductKeepsBilingualFields(t *testing.T) {
	p := &models.Product{
		Category: models.LocalizedText{Uk: "Арабіка", En: "Specialty Arabica"},
	}

	NormalizeProduct(p)

	if p.Category.En != "Specialty Arabica" {
		t.Errorf("already-bilingual field was overwritten: %q", p.Category.En)
	}
}

func TestNormalizeProductUnknownValueBothLanguages(t *testing.T) {
	p := &models.Product{
		Type: models.LocalizedText{Uk: "Капсули", En: "Капсули"},
	}

	NormalizeProduct(p)

	if p.Type.Uk != "Капсули" || p.Type.En != "Капсули" {
		t.Errorf("unknown value should pass through unchanged, got %+v", p.Type)
	}
}
