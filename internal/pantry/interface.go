package pantry

import (
	"context"

	"pantry-assistant/internal/model"
)

// UseCase is the turn-processing entry point exposed to the transport layer.
type UseCase interface {
	// HandleTurn processes one conversational turn to completion. It never
	// fails: every error path, including a panicking handler or an
	// unreachable store, resolves to a spoken apology with the session
	// left open.
	HandleTurn(ctx context.Context, sc model.Scope, utt Utterance) TurnOutput
}
