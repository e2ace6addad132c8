package skill

import (
	"context"
	"fmt"

	"github.com/krharsh17/alexa-flight-booking/models"

	"go.uber.org/zap"
)

// RequestHandler handles one shape of platform request. CanHandle decides
// on the request type and intent name; Handle produces the speech
// response or an error for the dispatcher's error path.
type RequestHandler interface {
	CanHandle(env *models.RequestEnvelope) bool
	Handle(ctx context.Context, env *models.RequestEnvelope) (*models.Response, error)
}

// Dispatcher routes an incoming envelope to the first registered handler
// that matches it. Handlers are tried in registration order. A handler
// failure or an unmatched request is logged and turned into the fixed
// apology response; every dispatch yields a well-formed response.
type Dispatcher struct {
	handlers []RequestHandler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger, handlers ...RequestHandler) *Dispatcher {
	return &Dispatcher{handlers: handlers, logger: logger}
}

// Dispatch runs one invocation end to end and never fails.
func (d *Dispatcher) Dispatch(ctx context.Context, env *models.RequestEnvelope) *models.Response {
	resp, err := d.dispatch(ctx, env)
	if err != nil {
		d.logger.Error("Error handled",
			zap.String("requestType", env.RequestType()),
			zap.String("intent", env.IntentName()),
			zap.Error(err),
		)
		return errorResponse()
	}
	return resp
}

func (d *Dispatcher) dispatch(ctx context.Context, env *models.RequestEnvelope) (resp *models.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	for _, h := range d.handlers {
		if h.CanHandle(env) {
			return h.Handle(ctx, env)
		}
	}
	return nil, fmt.Errorf("no handler matched request type %q intent %q", env.RequestType(), env.IntentName())
}

const errorSpeech = "Sorry, I don't understand your command. Please say it again."

func errorResponse() *models.Response {
	return models.NewResponseBuilder().
		Speak(errorSpeech).
		Reprompt(errorSpeech).
		Build()
}
