package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/task"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, description, status, priority, due_date, created_at, updated_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *taskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY due_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) CountByStatus(ctx context.Context, status task.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query,
		newTask.ID, newTask.Title, newTask.Description, string(newTask.Status), string(newTask.Priority), newTask.DueDate,
	))
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return fmt.Errorf("invalid due date: %w", err)
		}
		dueDate = &parsed
	}

	query := `
		UPDATE tasks
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			status = COALESCE($4, status),
			priority = COALESCE($5, priority),
			due_date = COALESCE($6, due_date),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Title, req.Description, req.Status, req.Priority, dueDate)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status task.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tasks SET status = $2, updated_at = NOW() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
