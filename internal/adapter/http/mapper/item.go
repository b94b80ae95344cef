package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToItemResponses(items []domain.Item) []dto.ItemResponse {
	responses := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses
}

func ToItemResponse(item domain.Item) dto.ItemResponse {
	response := dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}

	if item.Description != nil {
		value := *item.Description
		response.Description = &value
	}

	if item.UpdatedAt != nil {
		value := item.UpdatedAt.Format(time.RFC3339)
		response.UpdatedAt = &value
	}

	return response
}
