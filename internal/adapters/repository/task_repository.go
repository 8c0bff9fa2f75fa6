package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trabajos/core/internal/domain/entities"
	"github.com/trabajos/core/internal/ports"
)

// TaskRepository implements ports.TaskRepository on PostgreSQL.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns every task, newest first. The id tiebreaker keeps the
// order deterministic when two rows share a creation timestamp.
func (r *TaskRepository) List(ctx context.Context) ([]entities.Task, error) {
	query := `
		SELECT id, title, done, created_at
		FROM trabajos
		ORDER BY created_at DESC, id DESC`

	tasks := []entities.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// Create inserts a task. The column defaults assign done=0 and created_at.
func (r *TaskRepository) Create(ctx context.Context, title string) (*entities.Task, error) {
	query := `
		INSERT INTO trabajos (title)
		VALUES ($1)
		RETURNING id, title, done, created_at`

	var task entities.Task
	if err := r.db.GetContext(ctx, &task, query, title); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &task, nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*entities.Task, error) {
	query := `
		SELECT id, title, done, created_at
		FROM trabajos
		WHERE id = $1`

	var task entities.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}

	return &task, nil
}

// Update applies the patch as a single conditional statement. COALESCE
// over the nullable parameters makes the read-modify-write atomic, so
// concurrent partial updates cannot clobber each other's fields.
func (r *TaskRepository) Update(ctx context.Context, id int, patch ports.TaskPatch) (*entities.Task, error) {
	query := `
		UPDATE trabajos
		SET title = COALESCE($2, title),
		    done  = COALESCE($3, done)
		WHERE id = $1
		RETURNING id, title, done, created_at`

	var task entities.Task
	if err := r.db.GetContext(ctx, &task, query, id, patch.Title, patch.Done); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}

	return &task, nil
}

// Delete removes a task. A delete that matches no row still succeeds,
// so the operation is idempotent.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM trabajos WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	return nil
}
