package pantry

import "pantry-assistant/pkg/voiceapp"

// Utterance is the validated, per-turn input to the interpreter. It is built
// from the inbound envelope and discarded after the turn; absent or malformed
// slots surface as empty values, never as faults.
type Utterance struct {
	RequestType       string
	IntentName        string
	Intent            *voiceapp.Intent // nil for intent-less request types
	SessionAttributes map[string]any   // caller-echoed; only "offset" is read
}

// TurnOutput is what a single conversational turn produces.
// SessionAttributes is the state handed back to the caller for echoing on the
// next turn; it is emitted only when more results remain.
type TurnOutput struct {
	Speech            string
	EndSession        bool
	SessionAttributes map[string]any
}

// ParsedCommand is the result of fusing the quantity and name slots.
// An empty Name means the user must be asked to rephrase.
type ParsedCommand struct {
	Quantity int // always >= 1
	Name     string
}
