package ports

import (
	"context"

	"file-vault-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	CreateUser(ctx context.Context, username, password string) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
	VerifyCredentials(ctx context.Context, username, password string) (bool, error)
}
