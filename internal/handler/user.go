package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/config"
	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// UserHandler serves the identity endpoint.
type UserHandler struct {
	DB       *gorm.DB
	Defaults config.DefaultsConfig
}

func NewUserHandler(db *gorm.DB, defaults config.DefaultsConfig) *UserHandler {
	return &UserHandler{DB: db, Defaults: defaults}
}

// GetMe returns the user record, creating it together with a default
// profile on first authenticated contact.
func (h *UserHandler) GetMe(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var user models.User
	err := h.DB.Preload("Profile").First(&user, "id = ?", tgUser.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:        tgUser.ID,
			FirstName: tgUser.FirstName,
			LastName:  tgUser.LastName,
			Username:  tgUser.Username,
			PhotoURL:  tgUser.PhotoURL,
			Plan:      models.PlanFree,
			Profile: models.Profile{
				UserID:        tgUser.ID,
				Currency:      h.Defaults.Currency,
				MonthlyIncome: decimal.NewFromInt(h.Defaults.MonthlyIncome),
				PaydayDay:     h.Defaults.PaydayDay,
			},
		}
		if err := h.DB.Create(&user).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to create user")
			return
		}
	} else if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	util.Success(c, user)
}
