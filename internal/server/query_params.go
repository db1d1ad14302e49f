package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 20

func queryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 100 {
		return defaultListLimit
	}
	return limit
}
