package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func strPtr(value string) *string { return &value }

func TestBuildCreateTaskInput_AppliesDefaults(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:  "  Ship release  ",
		UserID: 7,
	})

	require.NoError(t, err)
	require.Equal(t, "Ship release", input.Title)
	require.Equal(t, domain.TaskPriorityMedium, input.Priority)
	require.Equal(t, domain.TaskStatusPending, input.Status)
	require.Nil(t, input.StartTime)
	require.Nil(t, input.EndTime)
}

func TestBuildCreateTaskInput_ParsesTimestamps(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:     "Ship release",
		UserID:    7,
		StartTime: strPtr("2026-03-01T09:00:00Z"),
		EndTime:   strPtr("2026-03-05T18:00:00Z"),
	})

	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), *input.StartTime)
	require.Equal(t, time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC), *input.EndTime)
}

func TestBuildCreateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:  "   ",
		UserID: 7,
	})

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildCreateTaskInput_RejectsMalformedTimestamp(t *testing.T) {
	_, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:     "Ship release",
		UserID:    7,
		StartTime: strPtr("next tuesday"),
	})

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_AbsentFieldIsNotTouched(t *testing.T) {
	body := `{"status":"in_progress"}`

	status := "in_progress"
	input, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{Status: &status}, rawFields(t, body))

	require.NoError(t, err)
	require.NotNil(t, input.Status)
	require.Equal(t, domain.TaskStatusInProgress, *input.Status)
	require.Nil(t, input.Title)
	require.False(t, input.DescriptionSet)
	require.False(t, input.StartTimeSet)
	require.False(t, input.EndTimeSet)
	require.False(t, input.CategorySet)
}

func TestBuildUpdateTaskInput_NullClearsNullableField(t *testing.T) {
	body := `{"description":null,"start_time":null,"category":null}`

	input, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, body))

	require.NoError(t, err)
	require.True(t, input.DescriptionSet)
	require.Nil(t, input.Description)
	require.True(t, input.StartTimeSet)
	require.Nil(t, input.StartTime)
	require.True(t, input.CategorySet)
	require.Nil(t, input.Category)
}

func TestBuildUpdateTaskInput_TimestampValueIsParsed(t *testing.T) {
	body := `{"end_time":"2026-03-05T18:00:00Z"}`

	input, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{
		EndTime: strPtr("2026-03-05T18:00:00Z"),
	}, rawFields(t, body))

	require.NoError(t, err)
	require.True(t, input.EndTimeSet)
	require.Equal(t, time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC), *input.EndTime)
}

func TestBuildUpdateTaskInput_MalformedTimestamp(t *testing.T) {
	body := `{"end_time":"tomorrow"}`

	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{
		EndTime: strPtr("tomorrow"),
	}, rawFields(t, body))

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_EmptyBody(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{}`))

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_NullTitleRejected(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{"title":null}`))

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_BlankTitleRejected(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{
		Title: strPtr("   "),
	}, rawFields(t, `{"title":"   "}`))

	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_NullUserIDRejected(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{"user_id":null}`))

	require.ErrorIs(t, err, ErrInvalidPayload)
}
