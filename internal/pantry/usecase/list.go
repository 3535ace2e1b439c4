package usecase

import (
	"context"
	"fmt"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
	"pantry-assistant/pkg/paging"
)

// handleListProducts speaks the first page of the pantry.
func (uc *implUseCase) handleListProducts(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return uc.listPage(ctx, sc, 0)
}

// handleNextProducts continues a paginated listing from the caller-echoed
// offset. A stale or out-of-range offset still yields a well-formed response.
func (uc *implUseCase) handleNextProducts(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return uc.listPage(ctx, sc, readOffset(utt.SessionAttributes))
}

func (uc *implUseCase) listPage(ctx context.Context, sc model.Scope, offset int) (pantry.TurnOutput, error) {
	items, err := uc.repo.ListItems(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.listPage ListItems: %v", err)
		return pantry.TurnOutput{}, err
	}

	if len(items) == 0 {
		return pantry.TurnOutput{Speech: speechListEmpty}, nil
	}

	page := paging.BuildPage(items, offset, uc.pageSize, renderItem)
	if page.Count == 0 {
		// Stale offset past the end of the list.
		return pantry.TurnOutput{Speech: speechListEmpty}, nil
	}

	speech := fmt.Sprintf(speechListPage, page.Rendered)
	out := pantry.TurnOutput{}
	if page.HasMore {
		speech += speechListMore
		// The offset attribute is the only cross-turn state; emitted only
		// while more results remain.
		out.SessionAttributes = map[string]any{attrOffset: page.NextOffset}
	} else {
		speech += speechListDone
	}
	out.Speech = speech
	return out, nil
}
