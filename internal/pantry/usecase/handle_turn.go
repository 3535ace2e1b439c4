package usecase

import (
	"context"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
)

// HandleTurn routes one turn through the dispatch table. The conversational
// turn must always complete: store failures become an apology, unknown
// (requestType, intentName) pairs fall back to help, and a panicking handler
// is caught here so no fault ever reaches the transport layer.
func (uc *implUseCase) HandleTurn(ctx context.Context, sc model.Scope, utt pantry.Utterance) (out pantry.TurnOutput) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.HandleTurn: recovered from panic: %v", r)
			out = pantry.TurnOutput{Speech: speechApology}
		}
	}()

	handler, ok := uc.dispatch[intentKey{utt.RequestType, utt.IntentName}]
	if !ok {
		uc.l.Warnf(ctx, "uc.HandleTurn: no handler for (%s, %s)", utt.RequestType, utt.IntentName)
		return pantry.TurnOutput{Speech: speechHelp}
	}

	out, err := handler(ctx, sc, utt)
	if err != nil {
		// Store unavailable or similar. Already logged at the failure site;
		// never retried within the turn.
		return pantry.TurnOutput{Speech: speechApology}
	}
	return out
}
