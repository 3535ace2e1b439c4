package usecase

import (
	"context"
	"fmt"
	"testing"

	"pantry-assistant/internal/model"
)

func TestHandleAddProduct(t *testing.T) {
	repo := newMockRepository()
	uc := New(&mockLogger{}, repo, 5)

	// Quantity arrives inside the name slot, quantity slot empty.
	out := uc.HandleTurn(context.Background(), testScope,
		intentUtterance(IntentAddProduct, map[string]string{slotProduct: "3 cocacolas"}))

	if out.Speech != fmt.Sprintf(speechAdded, 3, "cocacolas") {
		t.Errorf("speech = %q", out.Speech)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d items, want 1", len(repo.created))
	}
	got := repo.created[0]
	if got.Name != "cocacolas" || got.Quantity != 3 {
		t.Errorf("created = %+v", got)
	}
	if got.Category != model.CategoryDrinks {
		t.Errorf("category = %q, want %q", got.Category, model.CategoryDrinks)
	}
	if got.UserID != "u-1" {
		t.Errorf("user id = %q", got.UserID)
	}
}

func TestHandleAddProductUnclassified(t *testing.T) {
	repo := newMockRepository()
	uc := New(&mockLogger{}, repo, 5)

	uc.HandleTurn(context.Background(), testScope,
		intentUtterance(IntentAddProduct, map[string]string{slotProduct: "pilas"}))

	if len(repo.created) != 1 || repo.created[0].Category != "" {
		t.Errorf("unclassified product must be created with an empty category, got %+v", repo.created)
	}
}

func TestHandleAddProductEmptyNameAsksForClarification(t *testing.T) {
	repo := newMockRepository()
	uc := New(&mockLogger{}, repo, 5)

	// A numeral-only name slot must not crash and must not create anything.
	out := uc.HandleTurn(context.Background(), testScope,
		intentUtterance(IntentAddProduct, map[string]string{slotProduct: "3"}))

	if out.Speech != speechClarify || out.EndSession {
		t.Errorf("clarification = %+v", out)
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing should be created, got %+v", repo.created)
	}
}
