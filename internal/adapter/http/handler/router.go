package handler

import (
	"transfer-workflow-service/internal/adapter/http/middleware"
	"transfer-workflow-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WorkflowMgr    ports.WorkflowManager
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes, all session-token protected.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	workflowHandler := NewWorkflowHandler(deps.WorkflowMgr)

	v1 := r.Group("/api/v1")
	workflows := v1.Group("/workflows", jwtAuth)
	{
		workflows.POST("", workflowHandler.Create)
		workflows.GET("/:id", workflowHandler.Get)
		workflows.DELETE("/:id", workflowHandler.Close)
		workflows.PATCH("/:id/form", workflowHandler.UpdateForm)
		workflows.GET("/:id/quick-amounts", workflowHandler.QuickAmounts)
		workflows.POST("/:id/review", workflowHandler.OpenReview)
		workflows.DELETE("/:id/review", workflowHandler.CancelReview)
		workflows.POST("/:id/confirm", workflowHandler.Confirm)
		workflows.POST("/:id/pin", workflowHandler.SetupPIN)
	}

	return r
}
