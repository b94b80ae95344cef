package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context, offset, limit uint64) ([]domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput, hashedPassword string) (domain.User, error)
	Update(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserService interface {
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	ListUsers(ctx context.Context, offset, limit uint64) ([]domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}
