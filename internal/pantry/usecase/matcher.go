package usecase

import (
	"strconv"
	"strings"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/nlu"
)

// reconcileAction is the mutation chosen for a removal request.
type reconcileAction int

const (
	actionDelete reconcileAction = iota
	actionDecrement
)

// resolveTarget finds the single pantry item a removal request refers to.
// An item matches when its normalized name contains the normalized search
// term or vice versa, so "tomate" finds "tomate cherry" and the other way
// around. Ties go to the numerically highest id, read as "most recently
// added" since the store issues ids in creation order.
func resolveTarget(items []model.PantryItem, searchTerm string) (model.PantryItem, bool) {
	term := nlu.Normalize(searchTerm)
	if term == "" {
		return model.PantryItem{}, false
	}

	var best model.PantryItem
	found := false
	for _, item := range items {
		name := nlu.Normalize(item.Name)
		if name == "" {
			continue
		}
		if !strings.Contains(name, term) && !strings.Contains(term, name) {
			continue
		}
		if !found || idLess(best.ID, item.ID) {
			best = item
			found = true
		}
	}
	return best, found
}

// aggregateQuantity sums quantities over every item whose normalized name
// contains the normalized search term. Deliberately unidirectional, unlike
// the removal path which targets exactly one item.
func aggregateQuantity(items []model.PantryItem, searchTerm string) int {
	term := nlu.Normalize(searchTerm)
	if term == "" {
		return 0
	}

	total := 0
	for _, item := range items {
		if strings.Contains(nlu.Normalize(item.Name), term) {
			total += item.Quantity
		}
	}
	return total
}

// reconcile converts current stock and a requested removal quantity into the
// concrete mutation. Requesting at least the current stock deletes the item
// entirely — voice input cannot reliably distinguish "remove all" from an
// over-estimate, so over-requests are not errors.
func reconcile(current, requested int) (reconcileAction, int) {
	if current <= requested {
		return actionDelete, 0
	}
	return actionDecrement, current - requested
}

// idLess orders store ids: numerically when both parse as integers,
// lexicographically otherwise, so non-numeric id schemes still produce a
// deterministic winner.
func idLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
