package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/batirniyaz/todo-manager-proweb/pkg/translator"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// JsonErr is the `{status, msg}` error envelope shared by every endpoint.
type JsonErr struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Status: %s, Msg: %s", e.Status, e.Msg)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{Status: StatusError, Msg: GetTransMsg(msgKey, lang)}
}

// GetTransMsg retrieves the translated message for a key, falling back to
// the key itself when no translation exists.
func GetTransMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
