package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var errInvalidParam = errors.New("invalid parameter")

func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidParam
	}
	return id, nil
}

// paginationParams enforces skip >= 0 and limit in [1, maxLimit].
func paginationParams(c *gin.Context) (uint64, uint64, error) {
	skip := uint64(0)
	if value := c.Query("skip"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, 0, errInvalidParam
		}
		skip = parsed
	}

	limit := uint64(defaultLimit)
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil || parsed < 1 || parsed > maxLimit {
			return 0, 0, errInvalidParam
		}
		limit = parsed
	}

	return skip, limit, nil
}

func optionalUserIDQuery(c *gin.Context) (*uint64, error) {
	value := c.Query("user_id")
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return nil, errInvalidParam
	}
	return &parsed, nil
}

func optionalBoolQuery(c *gin.Context, name string) (*bool, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errInvalidParam
	}
	return &parsed, nil
}
