package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/adapter/http/validation"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	skip, limit, err := paginationParams(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidPagination, lang),
		)
		return
	}

	filter, err := taskFilterFromQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter, skip, limit)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskUserNotFound) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTaskUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrTaskUserNotFound):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTaskUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, lang),
	})
}

func (h *TaskHandler) ListTasksByUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := pathID(c, "user_id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	skip, limit, err := paginationParams(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidPagination, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasksByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		zap.L().Error("failed to list tasks by user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to complete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) ListOverdueTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	tasks, err := h.taskService.ListOverdueTasks(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list overdue tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) ListTasksByPriority(c *gin.Context) {
	lang := middleware.GetLang(c)

	priority := domain.TaskPriority(c.Param("priority"))
	if !priority.Valid() {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidPriority, lang),
		)
		return
	}

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasksByPriority(c.Request.Context(), priority, userID)
	if err != nil {
		zap.L().Error("failed to list tasks by priority", zap.String("priority", string(priority)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

// ListTasksByDateRange is intentionally unpaginated, matching the rest of the
// date-range contract.
func (h *TaskHandler) ListTasksByDateRange(c *gin.Context) {
	lang := middleware.GetLang(c)

	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidDateRange, lang),
		)
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidDateRange, lang),
		)
		return
	}

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasksByDateRange(c.Request.Context(), start, end, userID)
	if err != nil {
		zap.L().Error("failed to list tasks by date range", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) CountTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, err := taskCountFilterFromQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	count, err := h.taskService.CountTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to count tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCountTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *TaskHandler) GetTaskSummary(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	summary, err := h.taskService.TaskSummary(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to build task summary", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTaskSummary, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskSummaryResponse(summary))
}

func taskFilterFromQuery(c *gin.Context) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		return domain.TaskFilter{}, err
	}
	filter.UserID = userID

	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		if !status.Valid() {
			return domain.TaskFilter{}, errInvalidParam
		}
		filter.Status = &status
	}

	if value := c.Query("priority"); value != "" {
		priority := domain.TaskPriority(value)
		if !priority.Valid() {
			return domain.TaskFilter{}, errInvalidParam
		}
		filter.Priority = &priority
	}

	if value := c.Query("category"); value != "" {
		filter.Category = &value
	}

	filter.Search = c.Query("search")

	return filter, nil
}

func taskCountFilterFromQuery(c *gin.Context) (domain.TaskCountFilter, error) {
	var filter domain.TaskCountFilter

	userID, err := optionalUserIDQuery(c)
	if err != nil {
		return domain.TaskCountFilter{}, err
	}
	filter.UserID = userID

	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		if !status.Valid() {
			return domain.TaskCountFilter{}, errInvalidParam
		}
		filter.Status = &status
	}

	if value := c.Query("priority"); value != "" {
		priority := domain.TaskPriority(value)
		if !priority.Valid() {
			return domain.TaskCountFilter{}, errInvalidParam
		}
		filter.Priority = &priority
	}

	return filter, nil
}
