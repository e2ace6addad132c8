package models_test

import (
	"testing"

	"github.com/krharsh17/alexa-flight-booking/models"

	"github.com/stretchr/testify/require"
)

func TestResponseBuilderOptionalFields(t *testing.T) {
	resp := models.NewResponseBuilder().Speak("hello").Build()
	require.Equal(t, "hello", resp.SpeechText())
	require.Equal(t, models.SpeechTypePlainText, resp.OutputSpeech.Type)
	require.Nil(t, resp.Card)
	require.Nil(t, resp.Reprompt)
	require.False(t, resp.ShouldEndSession)

	resp = models.NewResponseBuilder().
		Speak("hello").
		Reprompt("still there?").
		WithSimpleCard("Title", "Body").
		EndSession().
		Build()
	require.Equal(t, "still there?", resp.Reprompt.OutputSpeech.Text)
	require.Equal(t, models.CardTypeSimple, resp.Card.Type)
	require.Equal(t, "Title", resp.Card.Title)
	require.True(t, resp.ShouldEndSession)
}

func TestResponseBuilderReturnsCopies(t *testing.T) {
	b := models.NewResponseBuilder().Speak("one")
	first := b.Build()
	b.Speak("two")
	second := b.Build()

	require.Equal(t, "one", first.SpeechText())
	require.Equal(t, "two", second.SpeechText())
}
