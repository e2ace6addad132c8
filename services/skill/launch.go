package skill

import (
	"context"

	"github.com/krharsh17/alexa-flight-booking/models"
)

// LaunchHandler greets the user when the skill is opened without an intent.
type LaunchHandler struct{}

func (LaunchHandler) CanHandle(env *models.RequestEnvelope) bool {
	return env.RequestType() == models.RequestTypeLaunch
}

func (LaunchHandler) Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error) {
	speechText := "Welcome to Flight Booking App! Ask me to book a flight."
	return models.NewResponseBuilder().
		Speak(speechText).
		Reprompt(speechText).
		WithSimpleCard("Welcome to Flight Booking App!", speechText).
		Build(), nil
}
