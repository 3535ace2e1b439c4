package nlu

import (
	"testing"

	"pantry-assistant/internal/model"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name string
		want model.Category
	}{
		{"leche entera", model.CategoryDairy},
		{"Yogur griego", model.CategoryDairy},
		{"plátanos", model.CategoryProduce},
		{"tomate cherry", model.CategoryProduce},
		{"arroz basmati", model.CategoryPantry},
		{"aceite de oliva", model.CategoryPantry},
		{"cocacolas", model.CategoryDrinks},
		{"zumo de naranja", model.CategoryProduce}, // produce group wins: checked first
		{"detergente", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := GuessCategory(tt.name); got != tt.want {
			t.Errorf("GuessCategory(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
