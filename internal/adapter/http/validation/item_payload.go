package validation

import (
	"encoding/json"
	"strings"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func BuildCreateItemInput(req dto.CreateItemRequest) (domain.CreateItemInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil {
		return domain.CreateItemInput{}, ErrInvalidPayload
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return domain.CreateItemInput{
		Name:        name,
		Description: req.Description,
		Price:       *req.Price,
		IsActive:    isActive,
	}, nil
}

func BuildUpdateItemInput(req dto.UpdateItemRequest, raw map[string]json.RawMessage) (domain.UpdateItemInput, error) {
	if !hasItemUpdateFields(raw) {
		return domain.UpdateItemInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateItemInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateItemInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateItemInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "price") && req.Price == nil {
		return domain.UpdateItemInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "is_active") && req.IsActive == nil {
		return domain.UpdateItemInput{}, ErrInvalidPayload
	}

	return domain.UpdateItemInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Price:          req.Price,
		IsActive:       req.IsActive,
	}, nil
}

func hasItemUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "price") ||
		hasJSONField(raw, "is_active")
}
