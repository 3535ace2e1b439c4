package voice

import (
	"github.com/gin-gonic/gin"

	"pantry-assistant/internal/pantry"
	"pantry-assistant/internal/webhook"
	pkgLog "pantry-assistant/pkg/log"
)

// Handler is the interface for the voice-platform delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       pantry.UseCase
	verifier *webhook.Validator // nil disables verification
}

// New creates a new voice delivery handler.
func New(l pkgLog.Logger, uc pantry.UseCase, verifier *webhook.Validator) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		verifier: verifier,
	}
}
