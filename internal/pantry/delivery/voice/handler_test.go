package voice_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry"
	"pantry-assistant/internal/pantry/delivery/voice"
	"pantry-assistant/internal/webhook"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	turns int
	out   pantry.TurnOutput
	last  pantry.Utterance
}

func (m *mockUseCase) HandleTurn(ctx context.Context, sc model.Scope, utt pantry.Utterance) pantry.TurnOutput {
	m.turns++
	m.last = utt
	return m.out
}

func envelopeBody(requestID string) []byte {
	body := map[string]any{
		"version": "1.0",
		"session": map[string]any{
			"sessionId":   "s-1",
			"application": map[string]any{"applicationId": "skill-1"},
			"user":        map[string]any{"userId": "u-1"},
			"attributes":  map[string]any{"offset": 5},
		},
		"request": map[string]any{
			"type":      "IntentRequest",
			"requestId": requestID,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"intent": map[string]any{
				"name": "ListProductsIntent",
				"slots": map[string]any{},
			},
		},
	}
	raw, _ := json.Marshal(body)
	return raw
}

func newTestRouter(h voice.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/voice", h.HandleWebhook)
	return r
}

func post(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/voice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleWebhookRendersEnvelope(t *testing.T) {
	uc := &mockUseCase{out: pantry.TurnOutput{
		Speech:            "Tienes: 1 leche.",
		SessionAttributes: map[string]any{"offset": 5},
	}}
	h := voice.New(&mockLogger{}, uc, nil)
	w := post(newTestRouter(h), envelopeBody("r-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Version           string         `json:"version"`
		SessionAttributes map[string]any `json:"sessionAttributes"`
		Response          struct {
			OutputSpeech     *struct{ Text string } `json:"outputSpeech"`
			ShouldEndSession bool                   `json:"shouldEndSession"`
		} `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response.OutputSpeech == nil || resp.Response.OutputSpeech.Text != "Tienes: 1 leche." {
		t.Errorf("speech = %+v", resp.Response.OutputSpeech)
	}
	if resp.SessionAttributes["offset"] != float64(5) {
		t.Errorf("attributes = %v", resp.SessionAttributes)
	}

	// The utterance handed to the usecase carries the echoed attributes.
	if uc.last.SessionAttributes["offset"] != float64(5) {
		t.Errorf("utterance attributes = %v", uc.last.SessionAttributes)
	}
	if uc.last.IntentName != "ListProductsIntent" {
		t.Errorf("intent = %q", uc.last.IntentName)
	}
}

func TestHandleWebhookMalformedJSON(t *testing.T) {
	uc := &mockUseCase{}
	h := voice.New(&mockLogger{}, uc, nil)
	w := post(newTestRouter(h), []byte("{not json"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if uc.turns != 0 {
		t.Error("malformed body must not reach the usecase")
	}
}

func TestHandleWebhookReplayIsNotReprocessed(t *testing.T) {
	uc := &mockUseCase{}
	verifier := webhook.NewValidator(webhook.Config{DedupSize: 10, RateLimitPerMin: 600})
	h := voice.New(&mockLogger{}, uc, verifier)
	r := newTestRouter(h)

	post(r, envelopeBody("r-dup"))
	w := post(r, envelopeBody("r-dup"))

	if w.Code != http.StatusOK {
		t.Fatalf("replay status = %d", w.Code)
	}
	if uc.turns != 1 {
		t.Errorf("usecase ran %d times, want 1", uc.turns)
	}
}

func TestHandleWebhookRejectsWrongApplication(t *testing.T) {
	uc := &mockUseCase{}
	verifier := webhook.NewValidator(webhook.Config{AppID: "other-skill", RateLimitPerMin: 600})
	h := voice.New(&mockLogger{}, uc, verifier)
	w := post(newTestRouter(h), envelopeBody("r-1"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if uc.turns != 0 {
		t.Error("foreign application must not reach the usecase")
	}
}
