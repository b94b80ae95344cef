package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToTaskResponses(tasks []domain.Task) []dto.TaskResponse {
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, ToTaskResponse(task))
	}
	return responses
}

// ToTaskResponse is the single place the denormalized owner fields are
// computed; every handler goes through it.
func ToTaskResponse(task domain.Task) dto.TaskResponse {
	response := dto.TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Priority:  string(task.Priority),
		Status:    string(task.Status),
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		response.Description = &value
	}

	if task.StartTime != nil {
		value := task.StartTime.Format(time.RFC3339)
		response.StartTime = &value
	}

	if task.EndTime != nil {
		value := task.EndTime.Format(time.RFC3339)
		response.EndTime = &value
	}

	if task.Category != nil {
		value := *task.Category
		response.Category = &value
	}

	if task.UpdatedAt != nil {
		value := task.UpdatedAt.Format(time.RFC3339)
		response.UpdatedAt = &value
	}

	if task.Owner != nil {
		email := task.Owner.Email
		username := task.Owner.Username
		response.UserEmail = &email
		response.UserUsername = &username
	}

	return response
}

func ToTaskSummaryResponse(summary domain.TaskSummary) dto.TaskSummaryResponse {
	return dto.TaskSummaryResponse{
		TotalTasks: summary.Total,
		ByStatus: dto.TaskStatusCounts{
			Pending:    summary.Pending,
			InProgress: summary.InProgress,
			Completed:  summary.Completed,
			Cancelled:  summary.Cancelled,
		},
		HighPriorityTasks: summary.HighPriority,
		UrgentTasks:       summary.Urgent,
		OverdueTasks:      summary.Overdue,
	}
}
