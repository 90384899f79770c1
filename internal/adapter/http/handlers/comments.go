package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/mapper"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/middleware"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/validation"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	var taskID *uint64
	if value := c.Query("task"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			fieldErrs := apierrors.FieldErrors{}
			fieldErrs.Add("task", apierrors.FieldMsgInvalidTaskRef, lang)
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		taskID = &parsed
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), callerID, taskID)
	if err != nil {
		zap.L().Error("failed to list comments", zap.Uint64("user_id", callerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailListComment, lang),
		)
		return
	}

	items := mapper.ToCommentItems(comments)
	c.JSON(http.StatusOK, dto.ListEnvelope{
		Status: apierrors.StatusSuccess,
		Length: len(items),
		Data:   items,
	})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	var req dto.CreateCommentRequest
	raw, err := bindRawJSON(c, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, fieldErrs := validation.BuildCreateCommentInput(callerID, req, raw, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), callerID, input)
	if err != nil {
		// A task the caller does not own reads the same as a missing one.
		if errors.Is(err, domain.ErrTaskNotFound) {
			fieldErrs := apierrors.FieldErrors{}
			fieldErrs.Add("task", apierrors.FieldMsgInvalidTaskRef, lang)
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}

		zap.L().Error("failed to create comment", zap.Uint64("user_id", callerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailCreateComment, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgCommentCreated, lang),
		Data:   mapper.ToCommentItem(comment),
	})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	commentID, ok := parseCommentID(c, lang)
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), callerID, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgCommentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get comment", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailGetComment, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Data:   mapper.ToCommentItem(comment),
	})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	h.updateComment(c, false)
}

func (h *CommentHandler) PatchComment(c *gin.Context) {
	h.updateComment(c, true)
}

func (h *CommentHandler) updateComment(c *gin.Context, partial bool) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	commentID, ok := parseCommentID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if _, err := bindRawJSON(c, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	patch, fieldErrs := validation.BuildCommentPatch(req, partial, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), callerID, commentID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgCommentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update comment", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailUpdateComment, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgCommentUpdated, lang),
		Data:   mapper.ToCommentItem(comment),
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	commentID, ok := parseCommentID(c, lang)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), callerID, commentID); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgCommentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete comment", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailDeleteComment, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgCommentDeleted, lang),
	})
}

func parseCommentID(c *gin.Context, lang string) (uint64, bool) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidCommentID, lang),
		)
		return 0, false
	}
	return commentID, true
}
