package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/budget"
	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// StatsHandler serves the derived budget snapshot.
type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// monthExpenses loads the caller's non-deleted expenses for the calendar
// month holding now. One range query covers totals, today and the chart.
func (h *StatsHandler) monthExpenses(userID int64, now time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := h.DB.
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?",
			userID, budget.MonthStart(now), budget.MonthEnd(now)).
		Find(&expenses).Error
	return expenses, err
}

// GetStats answers with the recomputed budget snapshot. "No profile yet"
// is a distinct error, never a zeroed stats object.
func (h *StatsHandler) GetStats(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.Profile
	err := h.DB.Where("user_id = ?", tgUser.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	now := time.Now()
	expenses, err := h.monthExpenses(tgUser.ID, now)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load expenses")
		return
	}

	util.Success(c, budget.ComputeStats(now, profile, expenses))
}

// GetCategories answers with this month's per-category totals plus the
// chart metadata.
func (h *StatsHandler) GetCategories(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.monthExpenses(tgUser.ID, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load expenses")
		return
	}

	util.Success(c, budget.Breakdown(expenses))
}
