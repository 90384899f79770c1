package mapper

import (
	"time"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		Task:      comment.TaskID,
		User:      comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
