package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/krharsh17/alexa-flight-booking/config"
	"github.com/krharsh17/alexa-flight-booking/models"
	"github.com/krharsh17/alexa-flight-booking/utils"

	"github.com/gin-gonic/gin"
)

// SkillRequestVerification rejects envelopes addressed to a different
// skill and envelopes whose timestamp is outside the configured tolerance.
// The body is restored so the webhook handler can bind it again.
func SkillRequestVerification() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var env models.RequestEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request envelope", err.Error())
			c.Abort()
			return
		}

		if skillID := config.AppConfig.SkillID; skillID != "" && env.ApplicationID() != skillID {
			utils.JSONError(c, http.StatusBadRequest, "request is addressed to a different skill", env.ApplicationID())
			c.Abort()
			return
		}

		maxAge := time.Duration(config.AppConfig.RequestMaxAgeSeconds) * time.Second
		if maxAge > 0 && env.Request.Timestamp != "" {
			ts, err := time.Parse(time.RFC3339, env.Request.Timestamp)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid request timestamp", env.Request.Timestamp)
				c.Abort()
				return
			}
			if drift := time.Since(ts); drift > maxAge || drift < -maxAge {
				utils.JSONError(c, http.StatusBadRequest, "request timestamp outside tolerance", env.Request.Timestamp)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
