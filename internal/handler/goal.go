package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// GoalHandler serves the savings goals endpoints.
type GoalHandler struct {
	DB *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{DB: db}
}

type createGoalReq struct {
	Name         string          `json:"name" binding:"required,max=120"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline"`
}

type contributeReq struct {
	Amount decimal.Decimal `json:"amount"`
}

// List returns the caller's goals, newest first.
func (h *GoalHandler) List(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var goals []models.Goal
	if err := h.DB.
		Where("user_id = ?", tgUser.ID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	util.Success(c, goals)
}

// Create adds a savings goal with a zero current amount.
func (h *GoalHandler) Create(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.TargetAmount); err != nil {
		util.Error(c, http.StatusBadRequest, "Target amount must be a positive number")
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := util.ParseDateTime(req.Deadline, time.Time{})
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid deadline date")
			return
		}
		deadline = &d
	}

	goal := models.Goal{
		UserID:        tgUser.ID,
		Name:          strings.TrimSpace(req.Name),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save goal")
		return
	}

	util.Success(c, goal)
}

// Contribute tops a goal up by a positive amount.
func (h *GoalHandler) Contribute(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid goal id")
		return
	}

	var req contributeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, tgUser.ID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load goal")
		}
		return
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(req.Amount)
	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save goal")
		return
	}

	util.Success(c, goal)
}

// Delete soft-deletes one of the caller's goals.
func (h *GoalHandler) Delete(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid goal id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, tgUser.ID).Delete(&models.Goal{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete goal")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Goal not found")
		return
	}

	util.Success(c, gin.H{"deleted": true})
}
