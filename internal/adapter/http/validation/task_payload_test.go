package validation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/pkg/translator"
)

func rawJSON(t *testing.T, payload string) map[string]json.RawMessage {
	t.Helper()

	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestBuildCreateTaskInput_MinimalPayload(t *testing.T) {
	input, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "Buy milk"}, translator.LanguageEn)

	require.Nil(t, fieldErrs)
	require.Equal(t, "Buy milk", input.Title)
	require.Equal(t, domain.TaskStatusPending, input.Status)
	require.Nil(t, input.Description)
	require.Nil(t, input.DueDate)
}

func TestBuildCreateTaskInput_FullPayload(t *testing.T) {
	description := "2 liters"
	status := "IP"
	dueDate := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	input, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:       "Buy milk",
		Description: &description,
		Status:      &status,
		DueDate:     &dueDate,
	}, translator.LanguageEn)

	require.Nil(t, fieldErrs)
	require.Equal(t, domain.TaskStatusInProgress, input.Status)
	require.Equal(t, "2 liters", *input.Description)
	require.NotNil(t, input.DueDate)
}

func TestBuildCreateTaskInput_BlankTitle(t *testing.T) {
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "   "}, translator.LanguageEn)

	require.Equal(t, []string{"This field is required."}, fieldErrs["title"])
}

func TestBuildCreateTaskInput_TitleTooLong(t *testing.T) {
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{Title: strings.Repeat("a", titleMaxLen+1)}, translator.LanguageEn)

	require.Equal(t, []string{"Ensure this field has no more than 100 characters."}, fieldErrs["title"])
}

func TestBuildCreateTaskInput_MultibyteTitleCountedInCharacters(t *testing.T) {
	// 80 characters but 160 bytes; the bound is characters.
	title := strings.Repeat("é", 80)
	input, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{Title: title}, translator.LanguageEn)

	require.Nil(t, fieldErrs)
	require.Equal(t, title, input.Title)

	_, fieldErrs = BuildCreateTaskInput(dto.CreateTaskRequest{Title: strings.Repeat("é", titleMaxLen+1)}, translator.LanguageEn)
	require.Equal(t, []string{"Ensure this field has no more than 100 characters."}, fieldErrs["title"])
}

func TestBuildCreateTaskInput_MultibyteDescriptionCountedInCharacters(t *testing.T) {
	description := strings.Repeat("é", descriptionMaxLen)
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:       "Buy milk",
		Description: &description,
	}, translator.LanguageEn)

	require.Nil(t, fieldErrs)
}

func TestBuildCreateTaskInput_DescriptionTooLong(t *testing.T) {
	description := strings.Repeat("a", descriptionMaxLen+1)
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:       "Buy milk",
		Description: &description,
	}, translator.LanguageEn)

	require.Equal(t, []string{"Ensure this field has no more than 255 characters."}, fieldErrs["description"])
}

func TestBuildCreateTaskInput_PastDueDate(t *testing.T) {
	dueDate := "2020-01-01T00:00:00Z"
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:   "Buy milk",
		DueDate: &dueDate,
	}, translator.LanguageEn)

	require.Equal(t, []string{"Due date cannot be in the past."}, fieldErrs["due_date"])
}

func TestBuildCreateTaskInput_MalformedDueDate(t *testing.T) {
	dueDate := "next tuesday"
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:   "Buy milk",
		DueDate: &dueDate,
	}, translator.LanguageEn)

	require.Equal(t, []string{"Enter a valid date and time."}, fieldErrs["due_date"])
}

func TestBuildCreateTaskInput_CollectsEveryViolation(t *testing.T) {
	status := "X"
	dueDate := "2020-01-01T00:00:00Z"
	_, fieldErrs := BuildCreateTaskInput(dto.CreateTaskRequest{
		Status:  &status,
		DueDate: &dueDate,
	}, translator.LanguageEn)

	require.Len(t, fieldErrs, 3)
	require.Contains(t, fieldErrs, "title")
	require.Contains(t, fieldErrs, "status")
	require.Contains(t, fieldErrs, "due_date")
}

func TestBuildTaskPatch_PartialSubset(t *testing.T) {
	status := "C"
	patch, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{Status: &status},
		rawJSON(t, `{"status":"C"}`),
		true,
		translator.LanguageEn,
	)

	require.Nil(t, fieldErrs)
	require.Nil(t, patch.Title)
	require.Equal(t, domain.TaskStatusCompleted, *patch.Status)
	require.False(t, patch.DescriptionSet)
	require.False(t, patch.DueDateSet)
}

func TestBuildTaskPatch_MultibyteTitleCountedInCharacters(t *testing.T) {
	title := strings.Repeat("é", 80)
	patch, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{Title: &title},
		rawJSON(t, `{"title":"x"}`),
		true,
		translator.LanguageEn,
	)

	require.Nil(t, fieldErrs)
	require.Equal(t, title, *patch.Title)
}

func TestBuildTaskPatch_FullUpdateRequiresTitle(t *testing.T) {
	status := "C"
	_, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{Status: &status},
		rawJSON(t, `{"status":"C"}`),
		false,
		translator.LanguageEn,
	)

	require.Equal(t, []string{"This field is required."}, fieldErrs["title"])
}

func TestBuildTaskPatch_NullTitleRejected(t *testing.T) {
	_, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{},
		rawJSON(t, `{"title":null}`),
		true,
		translator.LanguageEn,
	)

	require.Equal(t, []string{"This field is required."}, fieldErrs["title"])
}

func TestBuildTaskPatch_NullClearsDescriptionAndDueDate(t *testing.T) {
	patch, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{},
		rawJSON(t, `{"description":null,"due_date":null}`),
		true,
		translator.LanguageEn,
	)

	require.Nil(t, fieldErrs)
	require.True(t, patch.DescriptionSet)
	require.Nil(t, patch.Description)
	require.True(t, patch.DueDateSet)
	require.Nil(t, patch.DueDate)
}

func TestBuildTaskPatch_NullStatusIgnored(t *testing.T) {
	patch, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{},
		rawJSON(t, `{"status":null}`),
		true,
		translator.LanguageEn,
	)

	require.Nil(t, fieldErrs)
	require.Nil(t, patch.Status)
}

func TestBuildTaskPatch_InvalidStatus(t *testing.T) {
	status := "X"
	_, fieldErrs := BuildTaskPatch(
		dto.UpdateTaskRequest{Status: &status},
		rawJSON(t, `{"status":"X"}`),
		true,
		translator.LanguageEn,
	)

	require.Equal(t, []string{"Invalid value for status, choose from ['P', 'IP', 'C']"}, fieldErrs["status"])
}
