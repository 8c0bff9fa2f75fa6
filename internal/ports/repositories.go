package ports

import (
	"context"

	"github.com/trabajos/core/internal/domain/entities"
)

// TaskPatch carries the fields an update actually changes. A nil field
// keeps the stored value.
type TaskPatch struct {
	Title *string
	Done  *entities.Flag
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	// List returns all tasks ordered by creation time, newest first.
	List(ctx context.Context) ([]entities.Task, error)
	// Create inserts a task with the given title; the store assigns
	// id, done=0 and created_at.
	Create(ctx context.Context, title string) (*entities.Task, error)
	// GetByID returns the task or entities.ErrTaskNotFound.
	GetByID(ctx context.Context, id int) (*entities.Task, error)
	// Update applies the patch atomically and returns the post-update
	// record, or entities.ErrTaskNotFound.
	Update(ctx context.Context, id int, patch TaskPatch) (*entities.Task, error)
	// Delete removes the task. Deleting an id that does not exist is
	// not an error.
	Delete(ctx context.Context, id int) error
}
