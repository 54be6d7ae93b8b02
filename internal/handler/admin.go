package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/bot"
	"github.com/vladimirreshete-del/gde-dengi/internal/config"
	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// AdminHandler serves the operator endpoints: login, usage summary and
// broadcast. Bot may be nil when no bot token is configured.
type AdminHandler struct {
	DB  *gorm.DB
	Cfg config.AdminConfig
	Bot *bot.Bot
}

func NewAdminHandler(db *gorm.DB, cfg config.AdminConfig, tgBot *bot.Bot) *AdminHandler {
	return &AdminHandler{DB: db, Cfg: cfg, Bot: tgBot}
}

type adminLoginReq struct {
	Password string `json:"password" binding:"required"`
}

type broadcastReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// Login exchanges the operator password for a short-lived JWT.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.Cfg.PasswordHash == "" {
		util.Error(c, http.StatusServiceUnavailable, "Admin access is not configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Cfg.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Wrong password")
		return
	}

	ttl := time.Duration(h.Cfg.ExpireHours) * time.Hour
	token, err := util.GenerateAdminToken(h.Cfg.JWTSecret, ttl)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	util.Success(c, gin.H{
		"token":     token,
		"expiresAt": time.Now().Add(ttl),
	})
}

// Summary reports usage counters across all users.
func (h *AdminHandler) Summary(c *gin.Context) {
	var users, expenses, goals int64
	if err := h.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to count users")
		return
	}
	if err := h.DB.Model(&models.Expense{}).Count(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to count expenses")
		return
	}
	if err := h.DB.Model(&models.Goal{}).Count(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to count goals")
		return
	}

	var totalSpent decimal.Decimal
	row := h.DB.Model(&models.Expense{}).Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&totalSpent); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to sum expenses")
		return
	}

	util.Success(c, gin.H{
		"users":      users,
		"expenses":   expenses,
		"goals":      goals,
		"totalSpent": totalSpent,
	})
}

// Broadcast sends a text message to every known user via the bot.
func (h *AdminHandler) Broadcast(c *gin.Context) {
	if h.Bot == nil {
		util.Error(c, http.StatusServiceUnavailable, "Bot is not configured")
		return
	}

	var req broadcastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	sent := 0
	for _, u := range users {
		if err := h.Bot.Send(u.ID, req.Text); err != nil {
			continue // blocked bots are expected, keep going
		}
		sent++
	}

	util.Success(c, gin.H{
		"sent":  sent,
		"total": len(users),
	})
}
