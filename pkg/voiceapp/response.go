package voiceapp

// ResponseEnvelope is the outbound webhook body.
// SessionAttributes is omitted entirely when empty: some platforms treat the
// mere presence of the key as meaningful.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewResponse renders a spoken reply. Pure formatting: attrs is attached
// only when non-empty.
func NewResponse(text string, endSession bool, attrs map[string]any) ResponseEnvelope {
	env := ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     &OutputSpeech{Type: "PlainText", Text: text},
			ShouldEndSession: endSession,
		},
	}
	if len(attrs) > 0 {
		env.SessionAttributes = attrs
	}
	return env
}
