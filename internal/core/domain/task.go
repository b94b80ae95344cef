package domain

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskOwner carries the identity fields of the owning user, hydrated in the
// same query pass as the task itself.
type TaskOwner struct {
	Email    string
	Username string
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	UserID      uint64
	StartTime   *time.Time
	EndTime     *time.Time
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Owner       *TaskOwner // nil when the owning user cannot be resolved
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	UserID      uint64
	StartTime   *time.Time
	EndTime     *time.Time
	Category    *string
}

// UpdateTaskInput is a partial update: the *Set flags distinguish a field
// explicitly supplied as null from a field absent from the payload.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	Status         *TaskStatus
	UserID         *uint64
	StartTime      *time.Time
	StartTimeSet   bool
	EndTime        *time.Time
	EndTimeSet     bool
	Category       *string
	CategorySet    bool
}

// TaskFilter holds the optional list predicates. Equality filters are ANDed
// together; Search matches title or description case-insensitively.
type TaskFilter struct {
	UserID   *uint64
	Status   *TaskStatus
	Priority *TaskPriority
	Category *string
	Search   string
}

type TaskCountFilter struct {
	UserID   *uint64
	Status   *TaskStatus
	Priority *TaskPriority
}

// TaskSummary is a best-effort snapshot: each count comes from an independent
// query and no transaction spans them.
type TaskSummary struct {
	Total        int64
	Pending      int64
	InProgress   int64
	Completed    int64
	Cancelled    int64
	HighPriority int64
	Urgent       int64
	Overdue      int64
}
