package nlu

import (
	"strings"

	"pantry-assistant/internal/model"
)

// categoryKeywords maps each storage category to the keywords that select it.
// Keyword lists are already normalized (lower-case, no diacritics).
var categoryKeywords = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryDairy, []string{"leche", "queso", "yogur", "mantequilla", "nata", "huevo"}},
	{model.CategoryProduce, []string{
		"manzana", "platano", "naranja", "limon", "fresa", "uva", "melon", "sandia",
		"tomate", "lechuga", "pepino", "zanahoria", "cebolla", "patata", "pimiento",
		"fruta", "verdura",
	}},
	{model.CategoryPantry, []string{
		"arroz", "pasta", "harina", "azucar", "sal", "aceite", "pan", "galleta",
		"lenteja", "garbanzo", "atun", "conserva", "cereal",
	}},
	{model.CategoryDrinks, []string{
		"agua", "zumo", "refresco", "cola", "cerveza", "vino", "cafe", "infusion", "bebida", "batido",
	}},
}

// GuessCategory maps a product name to a storage category by keyword lookup.
// The first matching group wins; an empty Category means no group matched.
func GuessCategory(name string) model.Category {
	normalized := Normalize(name)
	if normalized == "" {
		return ""
	}
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(normalized, kw) {
				return group.category
			}
		}
	}
	return ""
}
