package skill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/skill"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const genericApology = "Sorry, I don't understand your command. Please say it again."

type fakeHandler struct {
	matches bool
	resp    *models.Response
	err     error
	calls   int
}

func (h *fakeHandler) CanHandle(_ *models.RequestEnvelope) bool {
	return h.matches
}

func (h *fakeHandler) Handle(_ context.Context, _ *models.RequestEnvelope) (*models.Response, error) {
	h.calls++
	return h.resp, h.err
}

func TestDispatcherNoMatchYieldsApology(t *testing.T) {
	d := skill.NewDispatcher(zap.NewNop(), &fakeHandler{matches: false})

	resp := d.Dispatch(context.Background(), intentEnvelope("UnknownIntent", nil))
	require.Equal(t, genericApology, resp.SpeechText())
	require.NotNil(t, resp.Reprompt)
}

func TestDispatcherHandlerErrorYieldsApology(t *testing.T) {
	failing := &fakeHandler{matches: true, err: errors.New("boom")}
	d := skill.NewDispatcher(zap.NewNop(), failing)

	resp := d.Dispatch(context.Background(), intentEnvelope("TravelIntent", nil))
	require.Equal(t, 1, failing.calls)
	require.Equal(t, genericApology, resp.SpeechText())
}

func TestDispatcherHandlerPanicYieldsApology(t *testing.T) {
	d := skill.NewDispatcher(zap.NewNop(), panicHandler{})

	resp := d.Dispatch(context.Background(), intentEnvelope("TravelIntent", nil))
	require.Equal(t, genericApology, resp.SpeechText())
}

type panicHandler struct{}

func (panicHandler) CanHandle(_ *models.RequestEnvelope) bool { return true }
func (panicHandler) Handle(_ context.Context, _ *models.RequestEnvelope) (*models.Response, error) {
	panic("unexpected")
}

func TestDispatcherFirstMatchWins(t *testing.T) {
	first := &fakeHandler{matches: true, resp: models.NewResponseBuilder().Speak("first").Build()}
	second := &fakeHandler{matches: true, resp: models.NewResponseBuilder().Speak("second").Build()}
	d := skill.NewDispatcher(zap.NewNop(), first, second)

	resp := d.Dispatch(context.Background(), intentEnvelope("TravelIntent", nil))
	require.Equal(t, "first", resp.SpeechText())
	require.Equal(t, 1, first.calls)
	require.Equal(t, 0, second.calls)
}

func TestLaunchHandlerGreets(t *testing.T) {
	d := skill.NewDispatcher(zap.NewNop(), skill.LaunchHandler{})

	env := &models.RequestEnvelope{
		Version: "1.0",
		Request: models.Request{Type: models.RequestTypeLaunch},
	}
	resp := d.Dispatch(context.Background(), env)
	require.Equal(t, "Welcome to Flight Booking App! Ask me to book a flight.", resp.SpeechText())
	require.NotNil(t, resp.Card)
	require.Equal(t, "Welcome to Flight Booking App!", resp.Card.Title)
}
