package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pathID parses a numeric path parameter. Returns false after writing
// nothing; callers decide the error response.
func pathID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// pagination reads skip/limit query parameters with the service defaults.
func pagination(c *gin.Context) (skip, limit int) {
	skip = defaultSkip
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(defaultSkip))); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil && v >= 0 {
		limit = v
	}
	return skip, limit
}
