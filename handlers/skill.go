package handlers

import (
	"net/http"

	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/services/skill"
	"github.com/krharsh17/alexa-flight-booking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkillHandler is the webhook the voice platform posts intent events to.
type SkillHandler struct {
	Dispatcher *skill.Dispatcher
}

func NewSkillHandler(dispatcher *skill.Dispatcher) *SkillHandler {
	return &SkillHandler{Dispatcher: dispatcher}
}

// HandleRequest binds the platform envelope, dispatches it and returns the
// response envelope. Handler failures never surface here; the dispatcher
// converts them to the apology response, so the platform always gets a 200
// with well-formed speech.
func (h *SkillHandler) HandleRequest(c *gin.Context) {
	var env models.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request envelope", err.Error())
		return
	}

	getLogger(c).Debug("dispatching skill request",
		zap.String("requestType", env.RequestType()),
		zap.String("intent", env.IntentName()),
	)

	resp := h.Dispatcher.Dispatch(c.Request.Context(), &env)
	c.JSON(http.StatusOK, models.ResponseEnvelope{
		Version:  "1.0",
		Response: *resp,
	})
}
