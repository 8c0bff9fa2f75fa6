package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trabajos/core/internal/domain/entities"
	"github.com/trabajos/core/internal/infrastructure/logger"
	"github.com/trabajos/core/internal/ports"
)

// TaskService handles the task lifecycle: it validates input, applies
// the defaulting policy for partial updates and delegates persistence
// to the repository. It holds no state between requests.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ListTasks returns all tasks, newest first. Callers always get a
// slice, never nil.
func (s *TaskService) ListTasks(ctx context.Context) ([]entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if tasks == nil {
		tasks = []entities.Task{}
	}

	return tasks, nil
}

// CreateTask creates a new task with the trimmed title.
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrEmptyTitle
	}

	task, err := s.taskRepo.Create(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// UpdateTask applies the defaulting policy and returns the post-update
// record. Fields that are missing or carry an unusable JSON type keep
// their stored value; a partial update never nulls a field.
func (s *TaskService) UpdateTask(ctx context.Context, id int, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.Update(ctx, id, buildPatch(req))
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "title", task.Title, "done", bool(task.Done))

	return task, nil
}

// DeleteTask removes a task. Deleting an id that no longer exists is a
// success, so the operation can be retried safely.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infow("Task deleted", "task_id", id)

	return nil
}

// buildPatch translates the loose wire body into a typed patch. A title
// counts only when it is a string with content after trimming; done
// counts only when it is a number, with any nonzero value coercing to
// set. Everything else falls back to the stored value.
func buildPatch(req ports.UpdateTaskRequest) ports.TaskPatch {
	var patch ports.TaskPatch

	if title, ok := req.Title.(string); ok {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			patch.Title = &trimmed
		}
	}

	// JSON numbers decode as float64.
	if n, ok := req.Done.(float64); ok {
		done := entities.Flag(n != 0)
		patch.Done = &done
	}

	return patch
}
