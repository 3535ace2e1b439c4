package usecase

import (
	"context"
	"fmt"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
)

// handleCheckProduct answers "how much X do I have" by summing the quantity
// over every matching item, not just the best one.
func (uc *implUseCase) handleCheckProduct(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	cmd := parseCommand(utt.Intent)
	if cmd.Name == "" {
		uc.l.Warnf(ctx, "uc.handleCheckProduct: %v", pantry.ErrEmptyProductName)
		return pantry.TurnOutput{Speech: speechClarify}, nil
	}

	items, err := uc.repo.ListItems(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.handleCheckProduct ListItems: %v", err)
		return pantry.TurnOutput{}, err
	}

	total := aggregateQuantity(items, cmd.Name)
	if total == 0 {
		return pantry.TurnOutput{Speech: fmt.Sprintf(speechCheckNone, cmd.Name)}, nil
	}
	return pantry.TurnOutput{Speech: fmt.Sprintf(speechCheckSome, total, cmd.Name)}, nil
}
