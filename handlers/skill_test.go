package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krharsh17/alexa-flight-booking/handlers"
	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/skill"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	dispatcher := skill.NewDispatcher(zap.NewNop(), skill.LaunchHandler{})
	skillHandler := handlers.NewSkillHandler(dispatcher)

	router := gin.New()
	router.POST("/api/skill", skillHandler.HandleRequest)
	return router
}

func TestSkillWebhookLaunchRoundTrip(t *testing.T) {
	router := newTestRouter()

	body := `{
		"version": "1.0",
		"session": {"sessionId": "s1", "user": {"userId": "u1"}},
		"request": {"type": "LaunchRequest", "requestId": "r1"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope models.ResponseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "1.0", envelope.Version)
	require.Equal(t, "Welcome to Flight Booking App! Ask me to book a flight.", envelope.Response.SpeechText())
}

func TestSkillWebhookUnmatchedRequestStillResponds(t *testing.T) {
	router := newTestRouter()

	body := `{
		"version": "1.0",
		"session": {"sessionId": "s1", "user": {"userId": "u1"}},
		"request": {"type": "IntentRequest", "requestId": "r1", "intent": {"name": "NoSuchIntent"}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope models.ResponseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Sorry, I don't understand your command. Please say it again.", envelope.Response.SpeechText())
}

func TestSkillWebhookRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/skill", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
