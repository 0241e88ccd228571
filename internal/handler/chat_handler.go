package handler

import (
	"net/http"

	"smart-life-agent/internal/service"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	chatService service.ChatService
	authHandler *AuthHandler
	logger      echo.Logger
}

func NewChatHandler(chatService service.ChatService, authHandler *AuthHandler, logger echo.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		authHandler: authHandler,
		logger:      logger,
	}
}

// Chat answers a single assistant message for the authenticated user
func (h *ChatHandler) Chat(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	var req struct {
		Message string `json:"message"`
		Context string `json:"context"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Message is required",
		})
	}

	h.logger.Info("Chat message from user:", user.Email)

	reply := h.chatService.Chat(c.Request().Context(), req.Message, req.Context)

	return c.JSON(http.StatusOK, map[string]string{
		"reply": reply,
	})
}
