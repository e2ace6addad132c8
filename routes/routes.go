package routes

import (
	"time"

	"github.com/krharsh17/alexa-flight-booking/handlers"
	"github.com/krharsh17/alexa-flight-booking/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSkillRoutes registers the voice-platform webhook.
func RegisterSkillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/skill")
	{
		api.Use(middleware.SkillRequestVerification())
		api.POST("", hb.SkillRequestHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Signature", "SignatureCertChainUrl"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterSkillRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
