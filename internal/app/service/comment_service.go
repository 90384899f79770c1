package service

import (
	"context"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
)

type CommentService struct {
	commentRepository ports.CommentRepository
	taskRepository    ports.TaskRepository
}

func NewCommentService(commentRepository ports.CommentRepository, taskRepository ports.TaskRepository) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		taskRepository:    taskRepository,
	}
}

func (s *CommentService) ListComments(ctx context.Context, callerID uint64, taskID *uint64) ([]domain.Comment, error) {
	return s.commentRepository.List(ctx, callerID, taskID)
}

// CreateComment stores a comment authored by the caller. The referenced
// task must be one the caller owns; a foreign or missing task id yields
// ErrTaskNotFound either way, so existence is not leaked to non-owners.
func (s *CommentService) CreateComment(ctx context.Context, callerID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	if _, err := s.taskRepository.GetByID(ctx, callerID, input.TaskID); err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepository.Create(ctx, callerID, input)
}

func (s *CommentService) GetComment(ctx context.Context, callerID, commentID uint64) (domain.Comment, error) {
	return s.commentRepository.GetByID(ctx, callerID, commentID)
}

func (s *CommentService) UpdateComment(ctx context.Context, callerID, commentID uint64, patch domain.CommentPatch) (domain.Comment, error) {
	comment, err := s.commentRepository.GetByID(ctx, callerID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepository.Update(ctx, domain.ApplyCommentPatch(comment, patch))
}

func (s *CommentService) DeleteComment(ctx context.Context, callerID, commentID uint64) error {
	return s.commentRepository.Delete(ctx, callerID, commentID)
}

var _ ports.CommentService = (*CommentService)(nil)
