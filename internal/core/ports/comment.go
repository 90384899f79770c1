package ports

import (
	"context"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
)

type CommentRepository interface {
	List(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Comment, error)
	Create(ctx context.Context, userID uint64, input domain.CreateCommentInput) (domain.Comment, error)
	GetByID(ctx context.Context, userID, commentID uint64) (domain.Comment, error)
	Update(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, userID, commentID uint64) error
}

type CommentService interface {
	ListComments(ctx context.Context, callerID uint64, taskID *uint64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, callerID uint64, input domain.CreateCommentInput) (domain.Comment, error)
	GetComment(ctx context.Context, callerID, commentID uint64) (domain.Comment, error)
	UpdateComment(ctx context.Context, callerID, commentID uint64, patch domain.CommentPatch) (domain.Comment, error)
	DeleteComment(ctx context.Context, callerID, commentID uint64) error
}
