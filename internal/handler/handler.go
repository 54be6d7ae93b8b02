package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladimirreshete-del/gde-dengi/internal/middleware"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// currentUser fetches the authenticated Telegram identity placed in the
// context by the auth gateway, answering 401 itself when it is missing.
func currentUser(c *gin.Context) (*util.TelegramUser, bool) {
	user, ok := middleware.TelegramUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Missing init data")
	}
	return user, ok
}

// Health reports liveness for the hosting platform.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
