package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the HTTP handlers handed to route registration.
type HandlerBundle struct {
	SkillRequestHandler gin.HandlerFunc
	HealthHandler       gin.HandlerFunc
}
