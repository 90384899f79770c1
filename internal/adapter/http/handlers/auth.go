package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/dto"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/middleware"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ObtainToken exchanges credentials for an access/refresh pair.
func (h *AuthHandler) ObtainToken(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TokenObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	fieldErrs := apierrors.FieldErrors{}
	if req.Username == "" {
		fieldErrs.Add("username", apierrors.FieldMsgRequired, lang)
	}
	if req.Password == "" {
		fieldErrs.Add("password", apierrors.FieldMsgRequired, lang)
	}
	if !fieldErrs.Empty() {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to issue token pair", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgFailIssueToken, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	access, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(apierrors.MsgInvalidToken, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// VerifyToken checks a token of either type and answers with an empty
// object on success.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TokenVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	if err := h.authService.Verify(req.Token); err != nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(apierrors.MsgInvalidToken, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
