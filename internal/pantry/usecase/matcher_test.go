package usecase

import (
	"testing"

	"pantry-assistant/internal/model"
)

func TestResolveTargetBidirectionalContainment(t *testing.T) {
	items := []model.PantryItem{
		{ID: "1", Name: "tomate cherry", Quantity: 3},
		{ID: "2", Name: "leche", Quantity: 1},
	}

	// Search term contained in item name.
	target, found := resolveTarget(items, "tomate")
	if !found || target.ID != "1" {
		t.Fatalf("resolveTarget(tomate) = %+v found=%v", target, found)
	}

	// Item name contained in search term: the symmetric direction.
	target, found = resolveTarget([]model.PantryItem{{ID: "3", Name: "tomate"}}, "tomate cherry")
	if !found || target.ID != "3" {
		t.Fatalf("resolveTarget(tomate cherry) = %+v found=%v", target, found)
	}
}

func TestResolveTargetNormalizesAccentsAndCase(t *testing.T) {
	items := []model.PantryItem{{ID: "1", Name: "Plátanos", Quantity: 2}}
	if _, found := resolveTarget(items, "platanos"); !found {
		t.Error("accent/case variants must match after normalization")
	}
	if _, found := resolveTarget(items, "PLÁTANOS"); !found {
		t.Error("upper-case accented variant must match")
	}
}

func TestResolveTargetTieBreaksOnHighestID(t *testing.T) {
	items := []model.PantryItem{
		{ID: "2", Name: "tomate", Quantity: 1},
		{ID: "10", Name: "tomate cherry", Quantity: 1},
		{ID: "9", Name: "tomate frito", Quantity: 1},
	}
	// Numeric comparison: 10 beats 9 and 2 despite "10" < "9" lexically.
	target, found := resolveTarget(items, "tomate")
	if !found || target.ID != "10" {
		t.Fatalf("tie-break chose %q, want 10", target.ID)
	}
}

func TestResolveTargetNoMatch(t *testing.T) {
	items := []model.PantryItem{{ID: "1", Name: "leche"}}
	if _, found := resolveTarget(items, "detergente"); found {
		t.Error("unrelated term must not match")
	}
	if _, found := resolveTarget(items, ""); found {
		t.Error("empty term must not match")
	}
	if _, found := resolveTarget(nil, "leche"); found {
		t.Error("empty pantry must not match")
	}
}

func TestAggregateQuantitySumsAllMatches(t *testing.T) {
	items := []model.PantryItem{
		{ID: "1", Name: "tomate cherry", Quantity: 3},
		{ID: "2", Name: "tomate pera", Quantity: 2},
		{ID: "3", Name: "leche", Quantity: 5},
	}
	if got := aggregateQuantity(items, "tomate"); got != 5 {
		t.Errorf("aggregateQuantity = %d, want 5", got)
	}
	// Unidirectional: a term longer than the item name does not aggregate.
	if got := aggregateQuantity(items, "tomate cherry pera"); got != 0 {
		t.Errorf("aggregateQuantity for over-long term = %d, want 0", got)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		current, requested int
		wantAction         reconcileAction
		wantRemaining      int
	}{
		{2, 5, actionDelete, 0},    // over-request deletes entirely
		{5, 5, actionDelete, 0},    // exact stock deletes
		{1, 1, actionDelete, 0},
		{5, 2, actionDecrement, 3}, // partial removal decrements
		{10, 1, actionDecrement, 9},
	}

	for _, tt := range tests {
		action, remaining := reconcile(tt.current, tt.requested)
		if action != tt.wantAction || remaining != tt.wantRemaining {
			t.Errorf("reconcile(%d, %d) = (%v, %d), want (%v, %d)",
				tt.current, tt.requested, action, remaining, tt.wantAction, tt.wantRemaining)
		}
		if remaining < 0 {
			t.Errorf("reconcile(%d, %d): negative remaining %d", tt.current, tt.requested, remaining)
		}
	}
}
