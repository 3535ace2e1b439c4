package usecase

import (
	"context"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
	"pantry-assistant/internal/pantry/repository"
	pkgLog "pantry-assistant/pkg/log"
)

// turnHandler processes one intent. A returned error means the store was
// unreachable (or similar); the dispatcher converts it into an apology.
type turnHandler func(ctx context.Context, sc model.Scope, utt pantry.Utterance) (pantry.TurnOutput, error)

// intentKey identifies one dispatch table entry.
type intentKey struct {
	requestType string
	intentName  string
}

// implUseCase is the private implementation of pantry.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        pkgLog.Logger
	pageSize int
	dispatch map[intentKey]turnHandler
}

// New creates the pantry UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, pageSize int) *implUseCase {
	uc := &implUseCase{
		repo:     repo,
		l:        l,
		pageSize: pageSize,
	}
	uc.dispatch = uc.buildDispatchTable()
	return uc
}

var _ pantry.UseCase = (*implUseCase)(nil)

// buildDispatchTable enumerates every supported (requestType, intentName)
// pair. Anything not listed here falls through to the generic help response.
func (uc *implUseCase) buildDispatchTable() map[intentKey]turnHandler {
	const intentReq = "IntentRequest"
	return map[intentKey]turnHandler{
		{"LaunchRequest", ""}:             uc.handleLaunch,
		{"SessionEndedRequest", ""}:       uc.handleSessionEnded,
		{intentReq, IntentAddProduct}:     uc.handleAddProduct,
		{intentReq, IntentListProducts}:   uc.handleListProducts,
		{intentReq, IntentNextProducts}:   uc.handleNextProducts,
		{intentReq, IntentRemoveProduct}:  uc.handleRemoveProduct,
		{intentReq, IntentClearPantry}:    uc.handleClearPantry,
		{intentReq, IntentCheckProduct}:   uc.handleCheckProduct,
		{intentReq, IntentYes}:            uc.handleYes,
		{intentReq, IntentNo}:             uc.handleGoodbye,
		{intentReq, IntentStop}:           uc.handleGoodbye,
		{intentReq, IntentCancel}:         uc.handleGoodbye,
		{intentReq, IntentHelp}:           uc.handleHelp,
	}
}
