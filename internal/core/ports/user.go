package ports

import (
	"context"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Verify(token string) error
}
