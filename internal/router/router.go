package router

import (
	"github.com/Benjafo/TimeClock/internal/handler"
	"github.com/Benjafo/TimeClock/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	JWTSecret      string
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
	EntryHandler   *handler.EntryHandler
}

// Setup wires the operator API routes.
func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Public routes (no auth)
	api.POST("/auth/login", deps.AuthHandler.Login)

	// Operator routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		authed.GET("/users", deps.UserHandler.List)
		authed.PUT("/users/:id/admin", deps.UserHandler.SetAdmin)

		authed.GET("/projects", deps.ProjectHandler.List)
		authed.POST("/projects/:id/assignments", deps.ProjectHandler.Assign)
		authed.DELETE("/projects/:id/assignments/:user_id", deps.ProjectHandler.Unassign)

		authed.DELETE("/entries/:id", deps.EntryHandler.Delete)
	}
}
