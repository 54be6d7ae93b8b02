package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// ProfileHandler serves the budget settings endpoint.
type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

type updateProfileReq struct {
	Currency      string          `json:"currency" binding:"required"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	PaydayDay     int             `json:"paydayDay" binding:"required"`
}

// Update replaces the caller's budget settings. Historical amounts are
// never converted when the currency changes; it is a display tag only.
func (h *ProfileHandler) Update(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := util.ValidateCurrency(req.Currency); err != nil {
		util.Error(c, http.StatusBadRequest, "Unsupported currency")
		return
	}
	if req.MonthlyIncome.IsNegative() {
		util.Error(c, http.StatusBadRequest, "Monthly income must not be negative")
		return
	}
	if err := util.ValidatePaydayDay(req.PaydayDay); err != nil {
		util.Error(c, http.StatusBadRequest, "Payday day must be within 1..31")
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

	profile.Currency = req.Currency
	profile.MonthlyIncome = req.MonthlyIncome
	profile.PaydayDay = req.PaydayDay

	if err := h.DB.Save(&profile).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	util.Success(c, profile)
}
