package ports

import (
	"context"
	"time"

	"taskdesk/internal/core/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	// List returns tasks matching the filter in creation order (id ascending).
	List(ctx context.Context, filter domain.TaskFilter, offset, limit uint64) ([]domain.Task, error)
	// ListByDateRange returns tasks whose start_time falls within [start, end],
	// or whose created_at does when start_time is null. Not paginated.
	ListByDateRange(ctx context.Context, start, end time.Time, userID *uint64) ([]domain.Task, error)
	ListOverdue(ctx context.Context, now time.Time, userID *uint64) ([]domain.Task, error)
	ListByPriority(ctx context.Context, priority domain.TaskPriority, userID *uint64) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context, filter domain.TaskCountFilter) (int64, error)
	CountOverdue(ctx context.Context, now time.Time, userID *uint64) (int64, error)
}

type TaskService interface {
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter, offset, limit uint64) ([]domain.Task, error)
	ListTasksByUser(ctx context.Context, userID uint64, offset, limit uint64) ([]domain.Task, error)
	ListTasksByDateRange(ctx context.Context, start, end time.Time, userID *uint64) ([]domain.Task, error)
	ListOverdueTasks(ctx context.Context, userID *uint64) ([]domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.TaskPriority, userID *uint64) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	CompleteTask(ctx context.Context, id uint64) (domain.Task, error)
	CountTasks(ctx context.Context, filter domain.TaskCountFilter) (int64, error)
	TaskSummary(ctx context.Context, userID *uint64) (domain.TaskSummary, error)
}
