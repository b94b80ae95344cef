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

type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	lang := middleware.GetLang(c)

	skip, limit, err := paginationParams(c)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidPagination, lang),
		)
		return
	}

	isActive, err := optionalBoolQuery(c, "is_active")
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), domain.ItemFilter{IsActive: isActive}, skip, limit)
	if err != nil {
		zap.L().Error("failed to list items", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListItems, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemResponses(items))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	lang := middleware.GetLang(c)

	itemID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgItemNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get item", zap.Uint64("item_id", itemID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListItems, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemResponse(item))
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateItemInput(req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create item", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateItem, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToItemResponse(item))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	lang := middleware.GetLang(c)

	itemID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.UpdateItemRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateItemInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, input)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgItemNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update item", zap.Uint64("item_id", itemID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateItem, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemResponse(item))
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	lang := middleware.GetLang(c)

	itemID, err := pathID(c, "id")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgItemNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete item", zap.Uint64("item_id", itemID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteItem, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgItemDeleted, lang),
	})
}

func (h *ItemHandler) CountItems(c *gin.Context) {
	lang := middleware.GetLang(c)

	isActive, err := optionalBoolQuery(c, "is_active")
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidItemPayload, lang),
		)
		return
	}

	count, err := h.itemService.CountItems(c.Request.Context(), domain.ItemFilter{IsActive: isActive})
	if err != nil {
		zap.L().Error("failed to count items", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCountItems, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
