package validation

import (
	"encoding/json"
	"strings"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func BuildCreateUserInput(req dto.CreateUserRequest) (domain.CreateUserInput, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || req.Password == "" {
		return domain.CreateUserInput{}, ErrInvalidPayload
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return domain.CreateUserInput{
		Email:    email,
		Username: username,
		FullName: req.FullName,
		IsActive: isActive,
		Password: req.Password,
	}, nil
}

func BuildUpdateUserInput(req dto.UpdateUserRequest, raw map[string]json.RawMessage) (domain.UpdateUserInput, error) {
	if !hasUserUpdateFields(raw) {
		return domain.UpdateUserInput{}, ErrInvalidPayload
	}

	var email *string
	if hasJSONField(raw, "email") && req.Email == nil {
		return domain.UpdateUserInput{}, ErrInvalidPayload
	}
	if req.Email != nil {
		value := strings.TrimSpace(*req.Email)
		if value == "" {
			return domain.UpdateUserInput{}, ErrInvalidPayload
		}
		email = &value
	}

	var username *string
	if hasJSONField(raw, "username") && req.Username == nil {
		return domain.UpdateUserInput{}, ErrInvalidPayload
	}
	if req.Username != nil {
		value := strings.TrimSpace(*req.Username)
		if value == "" {
			return domain.UpdateUserInput{}, ErrInvalidPayload
		}
		username = &value
	}

	fullNameSet := hasJSONField(raw, "full_name")
	if fullNameSet && !isJSONNull(raw["full_name"]) && req.FullName == nil {
		return domain.UpdateUserInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "is_active") && req.IsActive == nil {
		return domain.UpdateUserInput{}, ErrInvalidPayload
	}

	return domain.UpdateUserInput{
		Email:       email,
		Username:    username,
		FullName:    req.FullName,
		FullNameSet: fullNameSet,
		IsActive:    req.IsActive,
	}, nil
}

func hasUserUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "email") ||
		hasJSONField(raw, "username") ||
		hasJSONField(raw, "full_name") ||
		hasJSONField(raw, "is_active")
}
