package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// InitDataHeader carries the signed Telegram web-app payload.
const InitDataHeader = "X-Telegram-Init-Data"

const ctxTelegramUser = "tgUser"

// TelegramAuth verifies the init data signature and stores the embedded
// Telegram user in the request context. Identity lives only for this
// request; no session state is kept.
func TelegramAuth(botToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(InitDataHeader)
		if initData == "" {
			util.Error(c, http.StatusUnauthorized, "Missing init data")
			c.Abort()
			return
		}

		user, err := util.ValidateInitData(initData, botToken)
		if err != nil {
			util.Error(c, http.StatusForbidden, "Invalid auth")
			c.Abort()
			return
		}

		c.Set(ctxTelegramUser, user)
		c.Next()
	}
}

// TelegramUser pulls the authenticated Telegram user out of the context.
func TelegramUser(c *gin.Context) (*util.TelegramUser, bool) {
	v, ok := c.Get(ctxTelegramUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*util.TelegramUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
