package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "P"
	TaskStatusInProgress TaskStatus = "IP"
	TaskStatusCompleted  TaskStatus = "C"
)

// Valid reports whether the status is one of the three known codes.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
}

// TaskPatch carries the fields of a partial update. The Set flags record
// whether the field was present in the payload, so an explicit null can
// clear a field without clobbering absent ones.
type TaskPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	DueDate        *time.Time
	DueDateSet     bool
}

// ApplyTaskPatch merges a patch into a task. Absent fields retain their
// previous values. Owner and timestamps are never touched here.
func ApplyTaskPatch(task Task, patch TaskPatch) Task {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.DescriptionSet {
		task.Description = patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	return task
}
