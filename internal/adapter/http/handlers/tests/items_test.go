package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/handlers"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/domain"
	"taskdesk/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceMock struct {
	mock.Mock
}

func (m *itemServiceMock) GetItem(ctx context.Context, id uint64) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *itemServiceMock) ListItems(ctx context.Context, filter domain.ItemFilter, offset, limit uint64) ([]domain.Item, error) {
	args := m.Called(ctx, filter, offset, limit)

	var items []domain.Item
	if value := args.Get(0); value != nil {
		items = value.([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *itemServiceMock) CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *itemServiceMock) UpdateItem(ctx context.Context, id uint64, input domain.UpdateItemInput) (domain.Item, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *itemServiceMock) DeleteItem(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *itemServiceMock) CountItems(ctx context.Context, filter domain.ItemFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newItemRouter(handler *handlers.ItemHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.LanguageMiddleware())
	api.GET("/items", handler.ListItems)
	api.GET("/items/stats/count", handler.CountItems)
	api.GET("/items/:id", handler.GetItem)
	api.POST("/items", handler.CreateItem)
	api.PUT("/items/:id", handler.UpdateItem)
	api.DELETE("/items/:id", handler.DeleteItem)
	return router
}

func TestItemHandler_ListItems_ActiveOnly(t *testing.T) {
	createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	active := true

	serviceMock := new(itemServiceMock)
	serviceMock.On("ListItems", mock.Anything, domain.ItemFilter{IsActive: &active}, uint64(0), uint64(10)).Return(
		[]domain.Item{
			{
				ID:        1,
				Name:      "Mechanical keyboard",
				Price:     129.99,
				IsActive:  true,
				CreatedAt: createdAt,
			},
		},
		nil,
	).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodGet, "/api/v1/items?is_active=true", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Mechanical keyboard", got[0].Name)
	require.Equal(t, 129.99, got[0].Price)
	require.True(t, got[0].IsActive)
	require.Nil(t, got[0].Description)
	serviceMock.AssertExpectations(t)
}

func TestItemHandler_ListItems_InvalidSkip(t *testing.T) {
	serviceMock := new(itemServiceMock)
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodGet, "/api/v1/items?skip=-1", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItemHandler_GetItem_NotFound(t *testing.T) {
	serviceMock := new(itemServiceMock)
	serviceMock.On("GetItem", mock.Anything, uint64(404)).Return(domain.Item{}, domain.ErrItemNotFound).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodGet, "/api/v1/items/404", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Item not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestItemHandler_CreateItem_DefaultsActive(t *testing.T) {
	createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	expectedInput := domain.CreateItemInput{
		Name:     "Mechanical keyboard",
		Price:    129.99,
		IsActive: true,
	}

	serviceMock := new(itemServiceMock)
	serviceMock.On("CreateItem", mock.Anything, expectedInput).Return(
		domain.Item{
			ID:        5,
			Name:      "Mechanical keyboard",
			Price:     129.99,
			IsActive:  true,
			CreatedAt: createdAt,
		},
		nil,
	).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodPost, "/api/v1/items",
		`{"name":"Mechanical keyboard","price":129.99}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(5), got.ID)
	require.True(t, got.IsActive)
	serviceMock.AssertExpectations(t)
}

func TestItemHandler_CreateItem_RejectsNonPositivePrice(t *testing.T) {
	serviceMock := new(itemServiceMock)
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodPost, "/api/v1/items",
		`{"name":"Mechanical keyboard","price":0}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItemHandler_UpdateItem_ClearsDescriptionOnNull(t *testing.T) {
	createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)

	expectedInput := domain.UpdateItemInput{DescriptionSet: true}

	serviceMock := new(itemServiceMock)
	serviceMock.On("UpdateItem", mock.Anything, uint64(5), expectedInput).Return(
		domain.Item{
			ID:        5,
			Name:      "Mechanical keyboard",
			Price:     129.99,
			IsActive:  true,
			CreatedAt: createdAt,
			UpdatedAt: &updatedAt,
		},
		nil,
	).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodPut, "/api/v1/items/5", `{"description":null}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.Description)
	require.Equal(t, "2026-02-11T09:00:00Z", *got.UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestItemHandler_UpdateItem_EmptyPayload(t *testing.T) {
	serviceMock := new(itemServiceMock)
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodPut, "/api/v1/items/5", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItemHandler_DeleteItem_Success(t *testing.T) {
	serviceMock := new(itemServiceMock)
	serviceMock.On("DeleteItem", mock.Anything, uint64(5)).Return(nil).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodDelete, "/api/v1/items/5", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Item deleted successfully", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestItemHandler_CountItems_Success(t *testing.T) {
	serviceMock := new(itemServiceMock)
	serviceMock.On("CountItems", mock.Anything, domain.ItemFilter{}).Return(int64(42), nil).Once()
	router := newItemRouter(handlers.NewItemHandler(serviceMock))

	rec := performRequest(router, http.MethodGet, "/api/v1/items/stats/count", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(42), got.Count)
	serviceMock.AssertExpectations(t)
}
