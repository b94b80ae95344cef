package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskdesk/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) List(ctx context.Context, filter domain.TaskFilter, offset, limit uint64) ([]domain.Task, error) {
	args := m.Called(ctx, filter, offset, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByDateRange(ctx context.Context, start, end time.Time, userID *uint64) ([]domain.Task, error) {
	args := m.Called(ctx, start, end, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListOverdue(ctx context.Context, now time.Time, userID *uint64) ([]domain.Task, error) {
	args := m.Called(ctx, now, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByPriority(ctx context.Context, priority domain.TaskPriority, userID *uint64) ([]domain.Task, error) {
	args := m.Called(ctx, priority, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) Count(ctx context.Context, filter domain.TaskCountFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) CountOverdue(ctx context.Context, now time.Time, userID *uint64) (int64, error) {
	args := m.Called(ctx, now, userID)
	return args.Get(0).(int64), args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context, offset, limit uint64) ([]domain.User, error) {
	args := m.Called(ctx, offset, limit)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, input domain.CreateUserInput, hashedPassword string) (domain.User, error) {
	args := m.Called(ctx, input, hashedPassword)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
