package ports

import (
	"context"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, userID uint64, preds []domain.Predicate, page domain.Page) ([]domain.Task, error)
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, callerID uint64, filter domain.TaskFilter, page domain.Page) ([]domain.Task, error)
	CreateTask(ctx context.Context, callerID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, callerID, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, callerID, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, callerID, taskID uint64) error
}
