package service

import (
	"context"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, callerID uint64, filter domain.TaskFilter, page domain.Page) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, callerID, filter.Predicates(), page.Normalize())
}

func (s *TaskService) CreateTask(ctx context.Context, callerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, callerID, input)
}

func (s *TaskService) GetTask(ctx context.Context, callerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, callerID, taskID)
}

// UpdateTask loads the caller's task, merges the patch and stores the
// result. Full and partial updates share this path; the handler layer
// decides which fields the payload must contain.
func (s *TaskService) UpdateTask(ctx context.Context, callerID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, callerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.Update(ctx, domain.ApplyTaskPatch(task, patch))
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, callerID, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
