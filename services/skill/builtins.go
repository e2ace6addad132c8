package skill

import (
	"context"

	"github.com/krharsh17/alexa-flight-booking/models"

	"go.uber.org/zap"
)

// Built-in intent names reserved by the platform.
const (
	helpIntent   = "AMAZON.HelpIntent"
	cancelIntent = "AMAZON.CancelIntent"
	stopIntent   = "AMAZON.StopIntent"
)

// HelpHandler answers the platform's built-in help intent.
type HelpHandler struct{}

func (HelpHandler) CanHandle(env *models.RequestEnvelope) bool {
	return env.RequestType() == models.RequestTypeIntent && env.IntentName() == helpIntent
}

func (HelpHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	speechText := "You can ask me to find flights between two cities on a date, " +
		"for example: find me a flight from London to Paris tomorrow. " +
		"After I read out the options, say: book option one."
	return models.NewResponseBuilder().
		Speak(speechText).
		Reprompt(speechText).
		WithSimpleCard("Flight Booking App help", speechText).
		Build(), nil
}

// StopHandler ends the session on the built-in cancel and stop intents.
type StopHandler struct{}

func (StopHandler) CanHandle(env *models.RequestEnvelope) bool {
	if env.RequestType() != models.RequestTypeIntent {
		return false
	}
	name := env.IntentName()
	return name == cancelIntent || name == stopIntent
}

func (StopHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	speechText := "Goodbye! Have a good trip!"
	return models.NewResponseBuilder().
		Speak(speechText).
		EndSession().
		Build(), nil
}

// SessionEndedHandler acknowledges session teardown; the platform ignores
// the response body, so it only logs the reason.
type SessionEndedHandler struct {
	Logger *zap.Logger
}

func (h *SessionEndedHandler) CanHandle(env *models.RequestEnvelope) bool {
	return env.RequestType() == models.RequestTypeSessionEnded
}

func (h *SessionEndedHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	h.Logger.Info("session ended", zap.String("reason", env.Request.Reason))
	return models.NewResponseBuilder().Build(), nil
}
