package usecase

import (
	"context"
	"fmt"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/nlu"
	"pantry-assistant/internal/pantry"
	"pantry-assistant/internal/pantry/repository"
)

// handleAddProduct parses the slots, guesses a category, and creates the item.
func (uc *implUseCase) handleAddProduct(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	cmd := parseCommand(utt.Intent)
	if cmd.Name == "" {
		uc.l.Warnf(ctx, "uc.handleAddProduct: %v", pantry.ErrEmptyProductName)
		return pantry.TurnOutput{Speech: speechClarify}, nil
	}

	category := nlu.GuessCategory(cmd.Name)

	created, err := uc.repo.CreateItem(ctx, repository.CreateItemOptions{
		UserID:   sc.UserID,
		Name:     cmd.Name,
		Quantity: cmd.Quantity,
		Category: category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.handleAddProduct CreateItem: %v", err)
		return pantry.TurnOutput{}, err
	}

	uc.l.Infof(ctx, "uc.handleAddProduct: created item %s (%d %s, category %q)",
		created.ID, cmd.Quantity, cmd.Name, category)
	return pantry.TurnOutput{Speech: fmt.Sprintf(speechAdded, cmd.Quantity, cmd.Name)}, nil
}
