package service

import (
	"context"
	"errors"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
	"github.com/batirniyaz/todo-manager-proweb/pkg/authtoken"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *authtoken.Manager
}

func NewAuthService(userRepository ports.UserRepository, tokens *authtoken.Manager) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokens:         tokens,
	}
}

// Login checks the credentials and returns an access/refresh pair. Unknown
// user and wrong password collapse into the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if !authtoken.VerifyPassword(password, user.PasswordHash) {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccessToken(claims.UserID, claims.Username)
}

// Verify accepts tokens of either type, matching the upstream verify
// endpoint semantics.
func (s *AuthService) Verify(token string) error {
	_, err := s.tokens.ValidateToken(token)
	return err
}

var _ ports.AuthService = (*AuthService)(nil)
