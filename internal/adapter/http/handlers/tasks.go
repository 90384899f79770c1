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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	query := validation.TaskListQuery{
		Status:   c.Query("status"),
		Year:     c.Query("year"),
		Month:    c.Query("month"),
		Day:      c.Query("day"),
		Page:     c.Query("page"),
		PageSize: c.Query("page_size"),
	}

	filter, fieldErrs := validation.BuildTaskFilter(query, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	page, fieldErrs := validation.BuildPage(query, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), callerID, filter, page)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("user_id", callerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailListTask, lang),
		)
		return
	}

	items := mapper.ToTaskItems(tasks)
	c.JSON(http.StatusOK, dto.ListEnvelope{
		Status: apierrors.StatusSuccess,
		Length: len(items),
		Data:   items,
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	var req dto.CreateTaskRequest
	if _, err := bindRawJSON(c, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, fieldErrs := validation.BuildCreateTaskInput(req, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), callerID, input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Uint64("user_id", callerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgTaskCreated, lang),
		Data:   mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), callerID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Data:   mapper.ToTaskItem(task),
	})
}

// UpdateTask handles PUT: the mandatory fields must be present.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	h.updateTask(c, false)
}

// PatchTask handles PATCH: any subset of fields.
func (h *TaskHandler) PatchTask(c *gin.Context) {
	h.updateTask(c, true)
}

func (h *TaskHandler) updateTask(c *gin.Context, partial bool) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindRawJSON(c, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	patch, fieldErrs := validation.BuildTaskPatch(req, raw, partial, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), callerID, taskID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgTaskUpdated, lang),
		Data:   mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	callerID := middleware.GetCallerID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), callerID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status: apierrors.StatusSuccess,
		Msg:    apierrors.GetTransMsg(apierrors.MsgTaskDeleted, lang),
	})
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
