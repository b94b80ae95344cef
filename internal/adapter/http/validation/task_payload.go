package validation

import (
	"encoding/json"
	"strings"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	startTime, err := parseOptionalTimestamp(req.StartTime)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	endTime, err := parseOptionalTimestamp(req.EndTime)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		UserID:      req.UserID,
		StartTime:   startTime,
		EndTime:     endTime,
		Category:    req.Category,
	}, nil
}

// BuildUpdateTaskInput consults the raw field map so a field supplied as null
// clears the column while an absent field leaves it untouched.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	if hasJSONField(raw, "user_id") && req.UserID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	startTime, startTimeSet, err := parseOptionalTimestampField(raw, "start_time", req.StartTime)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	endTime, endTimeSet, err := parseOptionalTimestampField(raw, "end_time", req.EndTime)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	categorySet := hasJSONField(raw, "category")
	if categorySet && !isJSONNull(raw["category"]) && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Priority:       priority,
		Status:         status,
		UserID:         req.UserID,
		StartTime:      startTime,
		StartTimeSet:   startTimeSet,
		EndTime:        endTime,
		EndTimeSet:     endTimeSet,
		Category:       req.Category,
		CategorySet:    categorySet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "user_id") ||
		hasJSONField(raw, "start_time") ||
		hasJSONField(raw, "end_time") ||
		hasJSONField(raw, "category")
}

func parseOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := parseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalTimestampField(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, error) {
	set := hasJSONField(raw, field)
	if !set || isJSONNull(raw[field]) {
		return nil, set, nil
	}
	if value == nil {
		return nil, set, ErrInvalidPayload
	}
	parsed, err := parseTimestamp(*value)
	if err != nil {
		return nil, set, err
	}
	return &parsed, set, nil
}
