package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	Task      uint64 `json:"task"`
	User      uint64 `json:"user"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	Task *uint64 `json:"task"`
	User *uint64 `json:"user"`
	Text *string `json:"text"`
}

// UpdateCommentRequest: only text is mutable. Task and user may appear in a
// payload but are ignored, matching the immutability rules.
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}
