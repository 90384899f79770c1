package validation

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

// BuildCreateCommentInput validates a comment create payload. The author
// is always the caller; a client-supplied user field is only accepted when
// it names the caller. The user check runs before anything task-related.
func BuildCreateCommentInput(callerID uint64, req dto.CreateCommentRequest, raw map[string]json.RawMessage, lang string) (domain.CreateCommentInput, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}

	if hasJSONField(raw, "user") && !isJSONNull(raw["user"]) {
		if req.User == nil || *req.User != callerID {
			fieldErrs.Add("user", apierrors.FieldMsgUserMismatch, lang)
		}
	}

	if req.Task == nil {
		fieldErrs.Add("task", apierrors.FieldMsgRequired, lang)
	}

	var text string
	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		fieldErrs.Add("text", apierrors.FieldMsgRequired, lang)
	} else {
		text = *req.Text
		if utf8.RuneCountInString(text) > domain.CommentTextMaxLen {
			fieldErrs.Add("text", apierrors.FieldMsgTextTooLong, lang)
		}
	}

	if !fieldErrs.Empty() {
		return domain.CreateCommentInput{}, fieldErrs
	}

	return domain.CreateCommentInput{
		TaskID: *req.Task,
		Text:   text,
	}, nil
}

// BuildCommentPatch validates a comment update. Only text is mutable;
// task, user and created_at in the payload are ignored.
func BuildCommentPatch(req dto.UpdateCommentRequest, partial bool, lang string) (domain.CommentPatch, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}

	var text *string
	if req.Text != nil {
		if strings.TrimSpace(*req.Text) == "" {
			fieldErrs.Add("text", apierrors.FieldMsgRequired, lang)
		} else if utf8.RuneCountInString(*req.Text) > domain.CommentTextMaxLen {
			fieldErrs.Add("text", apierrors.FieldMsgTextTooLong, lang)
		} else {
			text = req.Text
		}
	} else if !partial {
		fieldErrs.Add("text", apierrors.FieldMsgRequired, lang)
	}

	if !fieldErrs.Empty() {
		return domain.CommentPatch{}, fieldErrs
	}

	return domain.CommentPatch{Text: text}, nil
}
