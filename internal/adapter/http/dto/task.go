package dto

// TaskResponse carries every task field plus the denormalized owner identity;
// user_email and user_username are null when the owner cannot be resolved.
type TaskResponse struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Priority     string  `json:"priority"`
	Status       string  `json:"status"`
	UserID       uint64  `json:"user_id"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Category     *string `json:"category"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	UserEmail    *string `json:"user_email"`
	UserUsername *string `json:"user_username"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	UserID      uint64  `json:"user_id" binding:"required,gt=0"`
	StartTime   *string `json:"start_time" binding:"omitempty"`
	EndTime     *string `json:"end_time" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	UserID      *uint64 `json:"user_id" binding:"omitempty,gt=0"`
	StartTime   *string `json:"start_time" binding:"omitempty"`
	EndTime     *string `json:"end_time" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
}

type TaskStatusCounts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
}

type TaskSummaryResponse struct {
	TotalTasks        int64            `json:"total_tasks"`
	ByStatus          TaskStatusCounts `json:"by_status"`
	HighPriorityTasks int64            `json:"high_priority_tasks"`
	UrgentTasks       int64            `json:"urgent_tasks"`
	OverdueTasks      int64            `json:"overdue_tasks"`
}
