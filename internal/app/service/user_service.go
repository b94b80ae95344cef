package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit uint64) ([]domain.User, error) {
	return s.userRepository.List(ctx, offset, limit)
}

// CreateUser rejects duplicate email or username before any write and stores
// only the bcrypt hash of the password.
func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	if err := s.checkEmailFree(ctx, input.Email, 0); err != nil {
		return domain.User{}, err
	}
	if err := s.checkUsernameFree(ctx, input.Username, 0); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.Create(ctx, input, string(hash))
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	if _, err := s.userRepository.GetByID(ctx, id); err != nil {
		return domain.User{}, err
	}

	if input.Email != nil {
		if err := s.checkEmailFree(ctx, *input.Email, id); err != nil {
			return domain.User{}, err
		}
	}
	if input.Username != nil {
		if err := s.checkUsernameFree(ctx, *input.Username, id); err != nil {
			return domain.User{}, err
		}
	}

	return s.userRepository.Update(ctx, id, input)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.Delete(ctx, id)
}

// selfID 0 means no row is exempt from the uniqueness check.
func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID uint64) error {
	existing, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrEmailTaken
	}
	return nil
}

func (s *UserService) checkUsernameFree(ctx context.Context, username string, selfID uint64) error {
	existing, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrUsernameTaken
	}
	return nil
}

var _ ports.UserService = (*UserService)(nil)
