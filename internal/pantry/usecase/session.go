package usecase

import (
	"context"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
)

// handleLaunch greets the user and hints at capabilities. Session stays open.
func (uc *implUseCase) handleLaunch(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return pantry.TurnOutput{Speech: speechWelcome}, nil
}

// handleSessionEnded acknowledges the platform's end-of-session notification.
// The platform ignores the response body here.
func (uc *implUseCase) handleSessionEnded(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return pantry.TurnOutput{EndSession: true}, nil
}

func (uc *implUseCase) handleYes(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return pantry.TurnOutput{Speech: speechOK}, nil
}

// handleGoodbye ends the session (No, Stop and Cancel all land here).
func (uc *implUseCase) handleGoodbye(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return pantry.TurnOutput{Speech: speechGoodbye, EndSession: true}, nil
}

func (uc *implUseCase) handleHelp(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error) {
	return pantry.TurnOutput{Speech: speechHelp}, nil
}
