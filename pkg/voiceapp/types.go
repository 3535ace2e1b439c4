// Package voiceapp defines the voice-platform webhook envelope: the JSON
// request the platform POSTs on every conversational turn and the response
// it expects back. The interpreter never keeps state between turns — the
// only cross-turn data is the sessionAttributes map the platform echoes.
package voiceapp

import "time"

// Request types carried in RequestEnvelope.Request.Type.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the inbound webhook body.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session identifies the conversation and carries caller-echoed attributes.
type Session struct {
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	User        User           `json:"user"`
	Attributes  map[string]any `json:"attributes"`
	New         bool           `json:"new"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

// Request is the per-turn payload.
type Request struct {
	Type      string    `json:"type"`
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	Locale    string    `json:"locale"`
	Intent    *Intent   `json:"intent,omitempty"`
}

// Intent names the recognized user goal and its filled slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

// Slot is a single named value the platform extracted from speech.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IntentName returns the intent name, or "" for intent-less request types.
func (r RequestEnvelope) IntentName() string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Name
}
