package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/handlers"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/middleware"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) ListComments(ctx context.Context, callerID uint64, taskID *uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, callerID, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentServiceMock) CreateComment(ctx context.Context, callerID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, callerID, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) GetComment(ctx context.Context, callerID, commentID uint64) (domain.Comment, error) {
	args := m.Called(ctx, callerID, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) UpdateComment(ctx context.Context, callerID, commentID uint64, patch domain.CommentPatch) (domain.Comment, error) {
	args := m.Called(ctx, callerID, commentID, patch)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) DeleteComment(ctx context.Context, callerID, commentID uint64) error {
	args := m.Called(ctx, callerID, commentID)
	return args.Error(0)
}

func newCommentRouter(serviceMock *commentServiceMock, callerID uint64) *gin.Engine {
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), withCaller(callerID))
	group.GET("/comment", handler.ListComments)
	group.POST("/comment", handler.CreateComment)
	group.GET("/comment/:id", handler.GetComment)
	group.PUT("/comment/:id", handler.UpdateComment)
	group.PATCH("/comment/:id", handler.PatchComment)
	group.DELETE("/comment/:id", handler.DeleteComment)
	return router
}

func TestCommentHandler_ListComments_Success(t *testing.T) {
	createdAt := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(commentServiceMock)
	serviceMock.On("ListComments", mock.Anything, uint64(7), (*uint64)(nil)).Return(
		[]domain.Comment{
			{ID: 2, TaskID: 5, UserID: 7, Text: "looks done to me", CreatedAt: createdAt},
		},
		nil,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodGet, "/api/comment", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string            `json:"status"`
		Length int               `json:"length"`
		Data   []dto.CommentItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.StatusSuccess, got.Status)
	require.Equal(t, 1, got.Length)
	require.Equal(t, uint64(2), got.Data[0].ID)
	require.Equal(t, uint64(5), got.Data[0].Task)
	require.Equal(t, uint64(7), got.Data[0].User)
	require.Equal(t, "looks done to me", got.Data[0].Text)
	require.Equal(t, "2027-03-01T09:00:00Z", got.Data[0].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_ListComments_TaskFilter(t *testing.T) {
	taskID := uint64(5)

	serviceMock := new(commentServiceMock)
	serviceMock.On("ListComments", mock.Anything, uint64(7), &taskID).Return(
		[]domain.Comment{}, nil,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodGet, "/api/comment?task=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_ListComments_MalformedTaskFilter(t *testing.T) {
	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodGet, "/api/comment?task=abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"Task not found."}, got["task"])
	serviceMock.AssertNotCalled(t, "ListComments", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_CreateComment_Success(t *testing.T) {
	createdAt := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(commentServiceMock)
	serviceMock.On("CreateComment", mock.Anything, uint64(7), domain.CreateCommentInput{TaskID: 5, Text: "ready for review"}).Return(
		domain.Comment{ID: 9, TaskID: 5, UserID: 7, Text: "ready for review", CreatedAt: createdAt},
		nil,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{
		"task": 5,
		"text": "ready for review",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Status string          `json:"status"`
		Msg    string          `json:"msg"`
		Data   dto.CommentItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.StatusSuccess, got.Status)
	require.Equal(t, "Comment created", got.Msg)
	require.Equal(t, uint64(9), got.Data.ID)
	require.Equal(t, uint64(7), got.Data.User)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_CreateComment_ForeignTaskReadsAsMissing(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("CreateComment", mock.Anything, uint64(7), domain.CreateCommentInput{TaskID: 42, Text: "hello"}).Return(
		domain.Comment{}, domain.ErrTaskNotFound,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{
		"task": 42,
		"text": "hello",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"Task not found."}, got["task"])
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_CreateComment_UserMismatch(t *testing.T) {
	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{
		"task": 5,
		"user": 8,
		"text": "hello",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"User must be the same as the authenticated user."}, got["user"])
	serviceMock.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_CreateComment_OwnUserAccepted(t *testing.T) {
	createdAt := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(commentServiceMock)
	serviceMock.On("CreateComment", mock.Anything, uint64(7), domain.CreateCommentInput{TaskID: 5, Text: "hello"}).Return(
		domain.Comment{ID: 10, TaskID: 5, UserID: 7, Text: "hello", CreatedAt: createdAt},
		nil,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{
		"task": 5,
		"user": 7,
		"text": "hello",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_CreateComment_MissingFields(t *testing.T) {
	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"This field is required."}, got["task"])
	require.Equal(t, []string{"This field is required."}, got["text"])
}

func TestCommentHandler_GetComment_NotFound(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("GetComment", mock.Anything, uint64(7), uint64(999)).Return(domain.Comment{}, domain.ErrCommentNotFound).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodGet, "/api/comment/999", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.StatusError, got.Status)
	require.Equal(t, "Comment not found", got.Msg)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_GetComment_InvalidID(t *testing.T) {
	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodGet, "/api/comment/abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.Msg)
	serviceMock.AssertNotCalled(t, "GetComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_PatchComment_TextOnly(t *testing.T) {
	text := "typo fixed"
	createdAt := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(commentServiceMock)
	serviceMock.On("UpdateComment", mock.Anything, uint64(7), uint64(2), domain.CommentPatch{Text: &text}).Return(
		domain.Comment{ID: 2, TaskID: 5, UserID: 7, Text: text, CreatedAt: createdAt},
		nil,
	).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodPatch, "/api/comment/2", gin.H{"text": text})

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string          `json:"status"`
		Msg    string          `json:"msg"`
		Data   dto.CommentItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Comment updated", got.Msg)
	require.Equal(t, "typo fixed", got.Data.Text)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_UpdateComment_RequiresText(t *testing.T) {
	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodPut, "/api/comment/2", gin.H{})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"This field is required."}, got["text"])
	serviceMock.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentHandler_DeleteComment_Success(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("DeleteComment", mock.Anything, uint64(7), uint64(2)).Return(nil).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodDelete, "/api/comment/2", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string `json:"status"`
		Msg    string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Comment deleted", got.Msg)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_DeleteComment_ForeignReportsNotFound(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("DeleteComment", mock.Anything, uint64(7), uint64(42)).Return(domain.ErrCommentNotFound).Once()

	router := newCommentRouter(serviceMock, 7)
	rec := doJSON(t, router, http.MethodDelete, "/api/comment/42", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Comment not found", got.Msg)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_TextLimitOnCreate(t *testing.T) {
	long := make([]byte, domain.CommentTextMaxLen+1)
	for i := range long {
		long[i] = 'a'
	}

	serviceMock := new(commentServiceMock)
	router := newCommentRouter(serviceMock, 7)

	rec := doJSON(t, router, http.MethodPost, "/api/comment", gin.H{
		"task": 5,
		"text": string(long),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"Ensure this field has no more than 255 characters."}, got["text"])
	serviceMock.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything)
}
