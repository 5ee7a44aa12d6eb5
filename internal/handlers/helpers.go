package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billtracker/internal/logger"
)

// parsePathID parses a uint path parameter.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondInternalError logs the error and writes the uniform failure
// response. Every error from the layers below takes this path; callers get
// no detail beyond the generic body.
func respondInternalError(c *gin.Context, err error) {
	logger.Get().Errorw("request failed",
		"error", err.Error(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
