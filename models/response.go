package models

// Speech and card types understood by the voice platform.
const (
	SpeechTypePlainText = "PlainText"
	CardTypeSimple      = "Simple"
)

// ResponseEnvelope is the outbound payload returned to the voice platform.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

// Response holds spoken text plus optional reprompt and card.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

// SpeechText returns the spoken text, or "" when the response is silent.
func (r *Response) SpeechText() string {
	if r == nil || r.OutputSpeech == nil {
		return ""
	}
	return r.OutputSpeech.Text
}

// ResponseBuilder assembles a Response with optional fields set explicitly.
type ResponseBuilder struct {
	resp Response
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the plain-text output speech.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = &OutputSpeech{Type: SpeechTypePlainText, Text: text}
	return b
}

// Reprompt sets the reprompt speech and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = &Reprompt{
		OutputSpeech: &OutputSpeech{Type: SpeechTypePlainText, Text: text},
	}
	return b
}

// WithSimpleCard attaches a simple card to the response.
func (b *ResponseBuilder) WithSimpleCard(title, content string) *ResponseBuilder {
	b.resp.Card = &Card{Type: CardTypeSimple, Title: title, Content: content}
	return b
}

// EndSession marks the session as finished after this response.
func (b *ResponseBuilder) EndSession() *ResponseBuilder {
	b.resp.ShouldEndSession = true
	return b
}

func (b *ResponseBuilder) Build() *Response {
	resp := b.resp
	return &resp
}
