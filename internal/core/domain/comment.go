package domain

import "time"

// CommentTextMaxLen mirrors the column size of comments.text.
const CommentTextMaxLen = 255

type Comment struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Text      string
	CreatedAt time.Time
}

type CreateCommentInput struct {
	TaskID uint64
	Text   string
}

// CommentPatch only ever carries text. Task, author and created_at are
// immutable after creation even when present in a payload.
type CommentPatch struct {
	Text *string
}

func ApplyCommentPatch(comment Comment, patch CommentPatch) Comment {
	if patch.Text != nil {
		comment.Text = *patch.Text
	}
	return comment
}
