package ports

import (
	"context"

	"github.com/trabajos/core/internal/domain/entities"
)

// TaskService interface for task lifecycle operations
type TaskService interface {
	ListTasks(ctx context.Context) ([]entities.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// Request/Response Types

type CreateTaskRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateTaskRequest mirrors the loose wire contract of PUT /trabajos/:id.
// The fields stay untyped so the service can tell a usable value apart
// from one that is absent or carries the wrong JSON type; the latter
// falls back to the stored value instead of clearing it.
type UpdateTaskRequest struct {
	Title interface{} `json:"title"`
	Done  interface{} `json:"done"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
