package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	skip, limit, err := paginationParams(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidPagination, lang),
		)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponses(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateUserInput(req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		if handled := h.writeConflict(c, err, lang); handled {
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.UpdateUserRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateUserInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}
		if handled := h.writeConflict(c, err, lang); handled {
			return
		}

		zap.L().Error("failed to update user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgUserDeleted, lang),
	})
}

func (h *UserHandler) writeConflict(c *gin.Context, err error, lang string) bool {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmailTaken, lang),
		)
		return true
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUsernameTaken, lang),
		)
		return true
	}
	return false
}
