package router

import (
	"net/http"

	"smart-life-agent/internal/handler"
	"smart-life-agent/internal/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRoutes(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	agentHandler *handler.AgentHandler,
	taskHandler *handler.TaskHandler,
	chatHandler *handler.ChatHandler,
) {
	// Public routes
	e.GET("/auth/:provider", authHandler.BeginAuthHandler)
	e.GET("/auth/:provider/callback", authHandler.CallbackHandler)
	e.GET("/auth/logout", authHandler.LogoutHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Protected API routes
	protected := e.Group("/api")
	protected.Use(middleware.AuthMiddleware(authHandler))

	// Agent pipeline
	protected.POST("/agent/run", agentHandler.RunAgent)

	// Task API routes
	protected.GET("/tasks", taskHandler.GetTasks)
	protected.GET("/priority-tasks", taskHandler.GetPriorityTasks)
	protected.GET("/calendar/tasks", taskHandler.GetCalendarTasks)
	protected.POST("/tasks/priority", taskHandler.UpdatePriority)
	protected.POST("/tasks/:id/complete", taskHandler.CompleteTask)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)
	protected.DELETE("/tasks", taskHandler.DeleteAllTasks)

	// Calendar passthrough
	protected.GET("/calendar/events", agentHandler.GetCalendarEvents)

	// Assistant
	protected.POST("/chat", chatHandler.Chat)

	// Real-time task updates via Server-Sent Events (SSE)
	protected.GET("/sse", agentHandler.SSETaskUpdates)
}
