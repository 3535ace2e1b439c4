package voice

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
	pkgResponse "pantry-assistant/pkg/response"
	"pantry-assistant/pkg/voiceapp"
)

// HandleWebhook is the Gin handler for inbound voice-platform turns.
// Verification failures reject before the turn starts; once a turn runs it
// always completes with HTTP 200 and a well-formed envelope — the usecase
// converts every internal failure into speech.
// @Summary Voice webhook
// @Description Process one conversational turn from the voice platform
// @Tags Webhook
// @Accept json
// @Produce json
// @Param request body voiceapp.RequestEnvelope true "turn envelope"
// @Success 200 {object} voiceapp.ResponseEnvelope
// @Router /webhook/voice [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var env voiceapp.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.l.Errorf(ctx, "voice handler: failed to parse envelope: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	if h.verifier != nil {
		if err := h.verifier.ValidateApplication(env.Session.Application.ApplicationID); err != nil {
			h.l.Warnf(ctx, "voice handler: %v", err)
			pkgResponse.Error(c, err)
			return
		}
		if err := h.verifier.ValidateTimestamp(env.Request.Timestamp); err != nil {
			h.l.Warnf(ctx, "voice handler: %v", err)
			pkgResponse.Error(c, err)
			return
		}
		if err := h.verifier.CheckRateLimit(env.Session.User.UserID); err != nil {
			h.l.Warnf(ctx, "voice handler: %v", err)
			pkgResponse.TooManyRequests(c, err)
			return
		}
		if h.verifier.SeenBefore(env.Request.RequestID) {
			// Redelivery of a request already processed: acknowledge without
			// re-executing the mutation.
			h.l.Infof(ctx, "voice handler: duplicate delivery of %s", env.Request.RequestID)
			c.JSON(http.StatusOK, voiceapp.ResponseEnvelope{Version: "1.0"})
			return
		}
	}

	sc := model.Scope{UserID: env.Session.User.UserID}
	utt := pantry.Utterance{
		RequestType:       env.Request.Type,
		IntentName:        env.IntentName(),
		Intent:            env.Request.Intent,
		SessionAttributes: env.Session.Attributes,
	}

	out := h.uc.HandleTurn(ctx, sc, utt)
	c.JSON(http.StatusOK, voiceapp.NewResponse(out.Speech, out.EndSession, out.SessionAttributes))
}
