// Package budget holds the daily-allowance calculation. Everything here is
// pure: handlers fetch the rows, this package only does arithmetic, so the
// same formula is easy to test and to mirror on the client.
package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
)

// Stats is the derived snapshot the mini app renders on its main screen.
// Never persisted: the ledger may change between any two requests.
type Stats struct {
	DaysRemaining       int             `json:"daysRemaining"`
	DailyLimit          decimal.Decimal `json:"dailyLimit"`
	SpentToday          decimal.Decimal `json:"spentToday"`
	RemainingInLimit    decimal.Decimal `json:"remainingInLimit"`
	TotalSpentThisMonth decimal.Decimal `json:"totalSpentThisMonth"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
}

// NextPayday returns the first payday strictly after today. The payday
// date itself counts as already past: a user with payday on the 1st who
// checks on the 1st is a full month away from the next one.
//
// Days beyond the month's length overflow into the following month via
// time.Date normalization, same as the front end's Date arithmetic.
func NextPayday(now time.Time, paydayDay int) time.Time {
	year, month, _ := now.Date()
	if now.Day() >= paydayDay {
		month++
	}
	return time.Date(year, month, paydayDay, 0, 0, 0, 0, now.Location())
}

// DaysRemaining counts days until the next payday, never less than 1 so
// the daily limit stays finite even on payday eve.
func DaysRemaining(now time.Time, paydayDay int) int {
	diff := NextPayday(now, paydayDay).Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// MonthStart returns midnight on the 1st of the calendar month holding t.
// Monthly totals reset here regardless of where the pay cycle falls.
func MonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns midnight on the 1st of the following month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// ComputeStats derives the budget snapshot from the profile settings and
// this month's ledger rows. Soft-deleted rows are skipped even if the
// caller forgot to filter them out.
func ComputeStats(now time.Time, profile models.Profile, monthExpenses []models.Expense) Stats {
	days := DaysRemaining(now, profile.PaydayDay)

	totalSpent := decimal.Zero
	spentToday := decimal.Zero
	for _, e := range monthExpenses {
		if e.DeletedAt.Valid {
			continue
		}
		totalSpent = totalSpent.Add(e.Amount)
		if sameDay(e.SpentAt.In(now.Location()), now) {
			spentToday = spentToday.Add(e.Amount)
		}
	}

	// Overspending the month never yields a negative residual budget.
	remaining := profile.MonthlyIncome.Sub(totalSpent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	// Cent precision for display; the front end shows two decimals.
	dailyLimit := remaining.DivRound(decimal.NewFromInt(int64(days)), 2)

	return Stats{
		DaysRemaining:       days,
		DailyLimit:          dailyLimit,
		SpentToday:          spentToday,
		// Allowed to go negative: that is how the day's overspend shows up.
		RemainingInLimit:    dailyLimit.Sub(spentToday),
		TotalSpentThisMonth: totalSpent,
		TotalIncome:         profile.MonthlyIncome,
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// CategoryTotal is one chart slice: a category with its display metadata
// and the summed spending.
type CategoryTotal struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Emoji    string          `json:"emoji"`
	Color    string          `json:"color"`
	Total    decimal.Decimal `json:"total"`
}

// Breakdown groups non-deleted expenses by category in the fixed display
// order. Zero-sum categories are dropped; unrecognized tags fold into
// "other".
func Breakdown(expenses []models.Expense) []CategoryTotal {
	sums := make(map[string]decimal.Decimal, len(models.Categories))
	for _, e := range expenses {
		if e.DeletedAt.Valid {
			continue
		}
		id := models.NormalizeCategory(e.Category)
		sums[id] = sums[id].Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for _, c := range models.Categories {
		total, ok := sums[c.ID]
		if !ok || total.IsZero() {
			continue
		}
		out = append(out, CategoryTotal{
			Category: c.ID,
			Name:     c.Name,
			Emoji:    c.Emoji,
			Color:    c.Color,
			Total:    total,
		})
	}
	return out
}
