package handler

import (
	"net/http"

	"smart-life-agent/internal/service"

	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	taskService service.TaskService
	authHandler *AuthHandler
	logger      echo.Logger
}

func NewTaskHandler(taskService service.TaskService, authHandler *AuthHandler, logger echo.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		authHandler: authHandler,
		logger:      logger,
	}
}

// GetTasks returns all of the user's tasks, ordered by date
func (h *TaskHandler) GetTasks(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	tasks, err := h.taskService.GetAllTasks(c.Request().Context(), user.Email)
	if err != nil {
		h.logger.Error("Failed to get tasks:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get tasks",
		})
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetPriorityTasks returns the tasks wrapped for the priority board
func (h *TaskHandler) GetPriorityTasks(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	tasks, err := h.taskService.GetAllTasks(c.Request().Context(), user.Email)
	if err != nil {
		h.logger.Error("Failed to get priority tasks:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get tasks",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tasks": tasks,
	})
}

// GetCalendarTasks returns the tasks projected for the calendar view
func (h *TaskHandler) GetCalendarTasks(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	tasks, err := h.taskService.GetAllTasks(c.Request().Context(), user.Email)
	if err != nil {
		h.logger.Error("Failed to get calendar tasks:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get tasks",
		})
	}

	calendarTasks := make([]map[string]string, 0, len(tasks))
	for _, task := range tasks {
		calendarTasks = append(calendarTasks, map[string]string{
			"id":    task.ID,
			"title": task.Title,
			"date":  task.Date,
			"type":  "task",
		})
	}

	return c.JSON(http.StatusOK, calendarTasks)
}

// UpdatePriority updates the priority of every task matching a title
func (h *TaskHandler) UpdatePriority(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	var req struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" || req.Priority == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Title and priority are required",
		})
	}

	updated, err := h.taskService.UpdatePriorityByTitle(c.Request().Context(), user.Email, req.Title, req.Priority)
	if err != nil {
		h.logger.Error("Failed to update task priority:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update priority",
		})
	}

	if !updated {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Task not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Priority updated",
	})
}

// CompleteTask marks a task as completed
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	taskID := c.Param("id")

	completed, err := h.taskService.CompleteTask(c.Request().Context(), user.Email, taskID)
	if err != nil {
		h.logger.Error("Failed to complete task:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to complete task",
		})
	}

	if !completed {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Task not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Task completed",
	})
}

// DeleteTask deletes a single task
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	taskID := c.Param("id")

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), user.Email, taskID)
	if err != nil {
		h.logger.Error("Failed to delete task:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete task",
		})
	}

	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Task not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Task deleted",
	})
}

// DeleteAllTasks clears the user's task collection
func (h *TaskHandler) DeleteAllTasks(c echo.Context) error {
	user, err := h.authHandler.GetCurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	count, err := h.taskService.DeleteAllTasks(c.Request().Context(), user.Email)
	if err != nil {
		h.logger.Error("Failed to delete all tasks:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete tasks",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "All tasks deleted",
		"deleted": count,
	})
}
