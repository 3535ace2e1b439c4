package usecase

import (
	"context"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
)

// handleClearPantry deletes every item, one store call each. Individual
// failures are logged and skipped — a failed delete does not abort the rest,
// and the user still hears success.
func (uc *implUseCase) handleClearPantry(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	items, err := uc.repo.ListItems(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.handleClearPantry ListItems: %v", err)
		return pantry.TurnOutput{}, err
	}

	failed := 0
	for _, item := range items {
		if err := uc.repo.DeleteItem(ctx, item.ID); err != nil {
			failed++
			uc.l.Errorf(ctx, "uc.handleClearPantry DeleteItem %s: %v", item.ID, err)
		}
	}
	if failed > 0 {
		uc.l.Warnf(ctx, "uc.handleClearPantry: %d of %d deletes failed", failed, len(items))
	}

	return pantry.TurnOutput{Speech: speechCleared}, nil
}
