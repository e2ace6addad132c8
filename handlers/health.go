package handlers

import (
	"net/http"

	"github.com/krharsh17/alexa-flight-booking/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
