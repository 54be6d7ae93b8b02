package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/budget"
	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// ExpenseHandler serves the expense ledger endpoints.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

type createExpenseReq struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" binding:"required,max=32"`
	Note     string          `json:"note" binding:"max=255"`
	SpentAt  string          `json:"spentAt"`
}

// Create appends one expense. Rows never change after this except for the
// soft-delete flag.
func (h *ExpenseHandler) Create(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	// Unknown tags are stored as sent; display folds them into "other".
	category := strings.TrimSpace(req.Category)
	if category == "" {
		util.Error(c, http.StatusBadRequest, "Category is required")
		return
	}

	spentAt, err := util.ParseDateTime(req.SpentAt, time.Now())
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid spentAt date")
		return
	}

	expense := models.Expense{
		UserID:   tgUser.ID,
		Amount:   req.Amount,
		Category: category,
		Note:     strings.TrimSpace(req.Note),
		SpentAt:  spentAt,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save expense")
		return
	}

	util.Success(c, expense)
}

// List returns one calendar month of expenses, newest first, paginated.
// ?month=YYYY-MM, defaults to the current month.
func (h *ExpenseHandler) List(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	monthStr := c.DefaultQuery("month", time.Now().Format("2006-01"))
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}
	start := budget.MonthStart(month)
	end := budget.MonthEnd(month)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if size <= 0 || size > 200 {
		size = 50
	}

	base := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?", tgUser.ID, start, end)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to count expenses")
		return
	}

	var expenses []models.Expense
	if err := base.Session(&gorm.Session{}).
		Order("spent_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load expenses")
		return
	}

	util.Success(c, gin.H{
		"items": expenses,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Delete soft-deletes one of the caller's expenses. The row stays in the
// table; aggregates just stop seeing it.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, tgUser.ID).Delete(&models.Expense{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Expense not found")
		return
	}

	util.Success(c, gin.H{"deleted": true})
}
