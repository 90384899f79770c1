package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// taskFilterColumns is the whitelist of columns predicates may reference.
var taskFilterColumns = map[string]string{
	"status":   "status",
	"due_date": "due_date",
}

// renderPredicates turns a predicate list into SQL conditions and their
// arguments, in the order the predicates were given. Unknown fields are an
// error rather than silently dropped.
func renderPredicates(preds []domain.Predicate) ([]string, []any, error) {
	conditions := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))

	for _, pred := range preds {
		column, ok := taskFilterColumns[pred.Field]
		if !ok {
			return nil, nil, fmt.Errorf("unknown filter field %q", pred.Field)
		}

		switch pred.Op {
		case domain.FilterOpEq:
			conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		case domain.FilterOpYear:
			conditions = append(conditions, fmt.Sprintf("YEAR(%s) = ?", column))
		case domain.FilterOpMonth:
			conditions = append(conditions, fmt.Sprintf("MONTH(%s) = ?", column))
		case domain.FilterOpDay:
			conditions = append(conditions, fmt.Sprintf("DAY(%s) = ?", column))
		default:
			return nil, nil, fmt.Errorf("unknown filter op %q", pred.Op)
		}
		args = append(args, pred.Value)
	}

	return conditions, args, nil
}

func (r *TaskRepository) List(ctx context.Context, userID uint64, preds []domain.Predicate, page domain.Page) ([]domain.Task, error) {
	conditions, args, err := renderPredicates(preds)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM tasks WHERE user_id = ?"
	queryArgs := append([]any{userID}, args...)
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id LIMIT ? OFFSET ?"
	queryArgs = append(queryArgs, page.Size, page.Offset())

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, queryArgs...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO tasks (user_id, title, description, status, due_date) VALUES (?, ?, ?, ?, ?)",
		userID,
		input.Title,
		input.Description,
		string(input.Status),
		input.DueDate,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, uint64(id))
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ?, updated_at = NOW() WHERE id = ? AND user_id = ?",
		task.Title,
		task.Description,
		string(task.Status),
		task.DueDate,
		task.ID,
		task.UserID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	// MySQL reports zero affected rows when the values are identical, so
	// existence is confirmed through the read-back instead.
	return r.GetByID(ctx, task.UserID, task.ID)
}

// Delete removes the caller's task. Dependent comments go with it through
// the ON DELETE CASCADE on comments.task_id.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
