package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
	"github.com/vladimirreshete-del/gde-dengi/internal/util"
)

// ExportHandler dumps the caller's expense history as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeader = []string{"Дата", "Категория", "Сумма", "Заметка"}

func (h *ExportHandler) loadExpenses(userID int64) ([]models.Expense, error) {
	var expenses []models.Expense
	err := h.DB.
		Where("user_id = ?", userID).
		Order("spent_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func exportRow(e models.Expense) []string {
	name := e.Category
	if c, ok := models.CategoryByID(models.NormalizeCategory(e.Category)); ok {
		name = c.Name
	}
	return []string{
		e.SpentAt.Format("2006-01-02 15:04"),
		name,
		e.Amount.StringFixed(2),
		e.Note,
	}
}

// ExportCSV streams the expense history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.loadExpenses(tgUser.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load expenses")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel picks up the Cyrillic headers
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, e := range expenses {
		writer.Write(exportRow(e))
	}
}

// ExportXLSX builds an Excel workbook with the expense history.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	tgUser, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.loadExpenses(tgUser.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load expenses")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, e := range expenses {
		for col, value := range exportRow(e) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to write workbook")
	}
}
