package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trabajos/core/internal/domain/entities"
	"github.com/trabajos/core/internal/infrastructure/logger"
	"github.com/trabajos/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /trabajos
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		// The client must always receive an array, even when the
		// store is down. The cause stays in the server log.
		h.logger.Errorw("List tasks failed", "error", err)
		return c.JSON(http.StatusInternalServerError, []entities.Task{})
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /trabajos
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		h.logger.Errorw("Create task failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create task")
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /trabajos/:id
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id never reaches the store.
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "task not found")
		}
		h.logger.Errorw("Update task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update task")
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /trabajos/:id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		h.logger.Errorw("Delete task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete task")
	}

	return c.NoContent(http.StatusNoContent)
}
