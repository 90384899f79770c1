package apierrors_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
	"github.com/batirniyaz/todo-manager-proweb/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError("test_key", "en")
	assert.Equal(t, apierrors.StatusError, err.Status)
	assert.Equal(t, "Test message", err.Msg)
}

func TestGetTransMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError("test_key", "en")
	assert.Equal(t, "Status: error, Msg: Test message", err.Error())
}

func TestFieldErrors_AddAndEmpty(t *testing.T) {
	fieldErrs := apierrors.FieldErrors{}
	assert.True(t, fieldErrs.Empty())

	fieldErrs.Add("due_date", "test_key", "en")
	fieldErrs.Add("due_date", "unknown_key", "en")

	assert.False(t, fieldErrs.Empty())
	assert.Equal(t, []string{"Test message", "unknown_key"}, fieldErrs["due_date"])
}
