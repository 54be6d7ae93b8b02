package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the {"data": ...} envelope the mini app expects.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Error writes the {"error": "..."} envelope.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}
