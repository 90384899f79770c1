package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
	"github.com/batirniyaz/todo-manager-proweb/pkg/authtoken"
)

// CallerIDKey is the context key AuthMiddleware stores the user id under.
const CallerIDKey = "caller_id"

// AuthMiddleware requires a bearer access token and records the caller's
// user id on the context. Handlers read it with GetCallerID and pass it
// explicitly into the service layer; nothing below the handler touches
// request state.
func AuthMiddleware(tokens *authtoken.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgAuthRequired, lang),
			)
			return
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(CallerIDKey, claims.UserID)
		c.Next()
	}
}

// GetCallerID returns the authenticated user's id. Zero means the request
// never passed AuthMiddleware.
func GetCallerID(c *gin.Context) uint64 {
	if value, exists := c.Get(CallerIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
