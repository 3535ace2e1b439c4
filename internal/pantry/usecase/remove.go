package usecase

import (
	"context"
	"fmt"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
)

// handleRemoveProduct resolves the fuzzy target and either deletes it or
// decrements its quantity.
func (uc *implUseCase) handleRemoveProduct(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	cmd := parseCommand(utt.Intent)
	if cmd.Name == "" {
		uc.l.Warnf(ctx, "uc.handleRemoveProduct: %v", pantry.ErrEmptyProductName)
		return pantry.TurnOutput{Speech: speechClarify}, nil
	}

	items, err := uc.repo.ListItems(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.handleRemoveProduct ListItems: %v", err)
		return pantry.TurnOutput{}, err
	}

	target, found := resolveTarget(items, cmd.Name)
	if !found {
		uc.l.Infof(ctx, "uc.handleRemoveProduct: %v: %q", pantry.ErrProductNotFound, cmd.Name)
		return pantry.TurnOutput{Speech: fmt.Sprintf(speechNotFound, cmd.Name)}, nil
	}

	action, remaining := reconcile(target.Quantity, cmd.Quantity)
	switch action {
	case actionDelete:
		if err := uc.repo.DeleteItem(ctx, target.ID); err != nil {
			uc.l.Errorf(ctx, "uc.handleRemoveProduct DeleteItem %s: %v", target.ID, err)
			return pantry.TurnOutput{}, err
		}
		return pantry.TurnOutput{Speech: fmt.Sprintf(speechRemovedAll, target.Name)}, nil

	default:
		if _, err := uc.repo.SetQuantity(ctx, target.ID, remaining); err != nil {
			uc.l.Errorf(ctx, "uc.handleRemoveProduct SetQuantity %s: %v", target.ID, err)
			return pantry.TurnOutput{}, err
		}
		return pantry.TurnOutput{
			Speech: fmt.Sprintf(speechDecremented, cmd.Quantity, target.Name, remaining),
		}, nil
	}
}
