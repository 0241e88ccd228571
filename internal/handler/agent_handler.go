package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smart-life-agent/internal/service"
	"smart-life-agent/internal/sse"

	"github.com/labstack/echo/v4"
)

type AgentHandler struct {
	agentService   service.AgentService
	calendarClient service.CalendarClient
	authHandler    *AuthHandler
	sseManager     *sse.SSEManager
	logger         echo.Logger
}

func NewAgentHandler(
	agentService service.AgentService,
	calendarClient service.CalendarClient,
	authHandler *AuthHandler,
	sseManager *sse.SSEManager,
	logger echo.Logger,
) *AgentHandler {
	return &AgentHandler{
		agentService:   agentService,
		calendarClient: calendarClient,
		authHandler:    authHandler,
		sseManager:     sseManager,
		logger:         logger,
	}
}

// RunAgent executes one extraction pipeline run for the authenticated user
// and returns the run summary.
func (h *AgentHandler) RunAgent(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	summary, err := h.agentService.Run(c.Request().Context(), user.Email)
	if err != nil {
		h.logger.Error("Agent run failed:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Agent run failed",
		})
	}

	// Push created tasks to any live dashboard connections as well
	for _, task := range summary.Tasks {
		h.sseManager.BroadcastTaskToUser(user.Email, task)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCalendarEvents returns the user's upcoming calendar events for the next
// month.
func (h *AgentHandler) GetCalendarEvents(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	now := time.Now()
	events, err := h.calendarClient.FetchUpcomingEvents(c.Request().Context(), user.Email, now, now.AddDate(0, 1, 0), 50)
	if err != nil {
		h.logger.Error("Failed to fetch calendar events:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch calendar events",
		})
	}

	return c.JSON(http.StatusOK, events)
}

// SSETaskUpdates provides Server-Sent Events for real-time task updates
func (h *AgentHandler) SSETaskUpdates(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")

	clientChannel := h.sseManager.AddClient(user.Email)
	defer func() {
		h.sseManager.RemoveClient(user.Email, clientChannel)
	}()

	// Send initial connection confirmation
	initEvent := map[string]interface{}{
		"type": "connection",
		"data": map[string]string{
			"message": "Connected to task updates",
			"user":    user.Email,
		},
		"time": time.Now().Unix(),
	}

	initJSON, _ := json.Marshal(initEvent)
	fmt.Fprintf(c.Response(), "data: %s\n\n", initJSON)
	c.Response().Flush()

	for {
		select {
		case eventData, ok := <-clientChannel:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.Response(), "data: %s\n\n", eventData)
			c.Response().Flush()
		case <-c.Request().Context().Done():
			// Client disconnected
			return nil
		}
	}
}
