package service

import (
	"context"
	"errors"
	"time"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		userRepository: userRepository,
	}
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter, offset, limit uint64) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter, offset, limit)
}

func (s *TaskService) ListTasksByUser(ctx context.Context, userID uint64, offset, limit uint64) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, domain.TaskFilter{UserID: &userID}, offset, limit)
}

func (s *TaskService) ListTasksByDateRange(ctx context.Context, start, end time.Time, userID *uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByDateRange(ctx, start, end, userID)
}

// ListOverdueTasks evaluates "now" once so every row in the response is
// judged against the same instant.
func (s *TaskService) ListOverdueTasks(ctx context.Context, userID *uint64) ([]domain.Task, error) {
	now := time.Now().UTC()
	return s.taskRepository.ListOverdue(ctx, now, userID)
}

func (s *TaskService) ListTasksByPriority(ctx context.Context, priority domain.TaskPriority, userID *uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByPriority(ctx, priority, userID)
}

// CreateTask resolves the owning user before any write so a broken reference
// never leaves a task row behind.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.checkUserExists(ctx, input.UserID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.UserID != nil {
		if err := s.checkUserExists(ctx, *input.UserID); err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.Delete(ctx, id)
}

// CompleteTask sets the status to completed and stamps end_time only when it
// was unset, so repeated calls leave the original end_time alone.
func (s *TaskService) CompleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	completed := domain.TaskStatusCompleted
	input := domain.UpdateTaskInput{Status: &completed}
	if task.EndTime == nil {
		now := time.Now().UTC()
		input.EndTime = &now
		input.EndTimeSet = true
	}

	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) CountTasks(ctx context.Context, filter domain.TaskCountFilter) (int64, error) {
	return s.taskRepository.Count(ctx, filter)
}

// TaskSummary issues one count query per bucket; the result is a best-effort
// snapshot, not an atomic view.
func (s *TaskService) TaskSummary(ctx context.Context, userID *uint64) (domain.TaskSummary, error) {
	var summary domain.TaskSummary
	var err error

	if summary.Total, err = s.taskRepository.Count(ctx, domain.TaskCountFilter{UserID: userID}); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.Pending, err = s.countByStatus(ctx, userID, domain.TaskStatusPending); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.InProgress, err = s.countByStatus(ctx, userID, domain.TaskStatusInProgress); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.Completed, err = s.countByStatus(ctx, userID, domain.TaskStatusCompleted); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.Cancelled, err = s.countByStatus(ctx, userID, domain.TaskStatusCancelled); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.HighPriority, err = s.countByPriority(ctx, userID, domain.TaskPriorityHigh); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.Urgent, err = s.countByPriority(ctx, userID, domain.TaskPriorityUrgent); err != nil {
		return domain.TaskSummary{}, err
	}
	if summary.Overdue, err = s.taskRepository.CountOverdue(ctx, time.Now().UTC(), userID); err != nil {
		return domain.TaskSummary{}, err
	}

	return summary, nil
}

func (s *TaskService) countByStatus(ctx context.Context, userID *uint64, status domain.TaskStatus) (int64, error) {
	return s.taskRepository.Count(ctx, domain.TaskCountFilter{UserID: userID, Status: &status})
}

func (s *TaskService) countByPriority(ctx context.Context, userID *uint64, priority domain.TaskPriority) (int64, error) {
	return s.taskRepository.Count(ctx, domain.TaskCountFilter{UserID: userID, Priority: &priority})
}

func (s *TaskService) checkUserExists(ctx context.Context, userID uint64) error {
	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrTaskUserNotFound
		}
		return err
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
