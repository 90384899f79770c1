package validation

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

const (
	titleMaxLen       = 100
	descriptionMaxLen = 255
)

// BuildCreateTaskInput validates a create payload and reports every
// violation keyed by field. The due-date check uses the clock at the moment
// of validation.
func BuildCreateTaskInput(req dto.CreateTaskRequest, lang string) (domain.CreateTaskInput, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fieldErrs.Add("title", apierrors.FieldMsgRequired, lang)
	} else if utf8.RuneCountInString(title) > titleMaxLen {
		fieldErrs.Add("title", apierrors.FieldMsgTitleTooLong, lang)
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > descriptionMaxLen {
		fieldErrs.Add("description", apierrors.FieldMsgDescriptionTooLong, lang)
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			fieldErrs.Add("status", apierrors.FieldMsgInvalidStatus, lang)
		}
	}

	dueDate := parseDueDate(req.DueDate, fieldErrs, lang)

	if !fieldErrs.Empty() {
		return domain.CreateTaskInput{}, fieldErrs
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
	}, nil
}

// BuildTaskPatch validates an update payload against the raw JSON object so
// absent, null and present fields are distinguished. With partial=false the
// mandatory create fields must be present, otherwise any subset is fine;
// the field rules themselves are identical either way.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, partial bool, lang string) (domain.TaskPatch, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			fieldErrs.Add("title", apierrors.FieldMsgRequired, lang)
		} else if utf8.RuneCountInString(value) > titleMaxLen {
			fieldErrs.Add("title", apierrors.FieldMsgTitleTooLong, lang)
		} else {
			title = &value
		}
	} else if !partial || hasJSONField(raw, "title") {
		fieldErrs.Add("title", apierrors.FieldMsgRequired, lang)
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && req.Description != nil && utf8.RuneCountInString(*req.Description) > descriptionMaxLen {
		fieldErrs.Add("description", apierrors.FieldMsgDescriptionTooLong, lang)
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			fieldErrs.Add("status", apierrors.FieldMsgInvalidStatus, lang)
		} else {
			status = &value
		}
	} else if hasJSONField(raw, "status") && !isJSONNull(raw["status"]) {
		fieldErrs.Add("status", apierrors.FieldMsgInvalidStatus, lang)
	}

	dueDateSet := hasJSONField(raw, "due_date")
	dueDate := parseDueDate(req.DueDate, fieldErrs, lang)

	if !fieldErrs.Empty() {
		return domain.TaskPatch{}, fieldErrs
	}

	return domain.TaskPatch{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
	}, nil
}

// parseDueDate parses an optional RFC 3339 due date and rejects values
// strictly before now.
func parseDueDate(value *string, fieldErrs apierrors.FieldErrors, lang string) *time.Time {
	if value == nil {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		fieldErrs.Add("due_date", apierrors.FieldMsgInvalidDateTime, lang)
		return nil
	}
	if parsed.Before(time.Now()) {
		fieldErrs.Add("due_date", apierrors.FieldMsgDueDatePast, lang)
		return nil
	}
	return &parsed
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
