package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func profile(income int64, payday int) models.Profile {
	return models.Profile{
		Currency:      "RUB",
		MonthlyIncome: decimal.NewFromInt(income),
		PaydayDay:     payday,
	}
}

func expense(amount float64, spentAt time.Time) models.Expense {
	return models.Expense{
		Amount:   decimal.NewFromFloat(amount),
		Category: "food",
		SpentAt:  spentAt,
	}
}

func deletedExpense(amount float64, spentAt time.Time) models.Expense {
	e := expense(amount, spentAt)
	e.DeletedAt = gorm.DeletedAt{Time: spentAt, Valid: true}
	return e
}

// ==================== payday boundary ====================

// Checking on the payday day itself means the next payday is a full
// month away, not today.
func TestNextPayday_PaydayDayItselfIsPast(t *testing.T) {
	testCases := []struct {
		now    time.Time
		payday int
		want   time.Time
	}{
		{date(2025, time.June, 15), 15, date(2025, time.July, 15)},
		{date(2025, time.June, 1), 1, date(2025, time.July, 1)},
		{date(2025, time.December, 20), 20, date(2026, time.January, 20)},
		{date(2025, time.June, 16), 15, date(2025, time.July, 15)},
	}

	for _, tc := range testCases {
		got := NextPayday(tc.now, tc.payday)
		if !got.Equal(tc.want) {
			t.Errorf("NextPayday(%v, %d) = %v, want %v", tc.now, tc.payday, got, tc.want)
		}
	}
}

func TestNextPayday_BeforePaydayStaysInMonth(t *testing.T) {
	got := NextPayday(date(2025, time.June, 10), 15)
	want := date(2025, time.June, 15)
	if !got.Equal(want) {
		t.Errorf("NextPayday = %v, want %v", got, want)
	}
}

// Payday 31 in a 30-day month overflows into the next month, matching the
// front end's Date arithmetic.
func TestNextPayday_OverflowNormalizes(t *testing.T) {
	got := NextPayday(date(2025, time.June, 10), 31)
	want := date(2025, time.July, 1)
	if !got.Equal(want) {
		t.Errorf("NextPayday = %v, want %v", got, want)
	}
}

func TestDaysRemaining_FloorOfOne(t *testing.T) {
	// Half a day before payday still yields 1, never 0.
	now := time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)
	if got := DaysRemaining(now, 15); got != 1 {
		t.Errorf("DaysRemaining = %d, want 1", got)
	}
}

func TestDaysRemaining_OnPaydayDay(t *testing.T) {
	// June 15 -> July 15 is exactly 30 days.
	if got := DaysRemaining(date(2025, time.June, 15), 15); got != 30 {
		t.Errorf("DaysRemaining = %d, want 30", got)
	}
}

// ==================== spec'd end-to-end scenarios ====================

// Day 1 of a 30-day month, payday on the 1st: the whole month is ahead.
func TestComputeStats_FullMonthAhead(t *testing.T) {
	now := date(2025, time.April, 1)
	stats := ComputeStats(now, profile(90000, 1), nil)

	if stats.DaysRemaining != 30 {
		t.Errorf("DaysRemaining = %d, want 30", stats.DaysRemaining)
	}
	if want := decimal.NewFromInt(3000); !stats.DailyLimit.Equal(want) {
		t.Errorf("DailyLimit = %s, want %s", stats.DailyLimit, want)
	}
	if !stats.TotalSpentThisMonth.IsZero() {
		t.Errorf("TotalSpentThisMonth = %s, want 0", stats.TotalSpentThisMonth)
	}
}

// Three expenses today, 12 days to payday: 82930 / 12 = 6910.83.
func TestComputeStats_MidMonth(t *testing.T) {
	now := date(2025, time.May, 20) // payday 1st -> June 1 is 12 days away
	expenses := []models.Expense{
		expense(1240, now),
		expense(450, now),
		expense(380, now),
	}

	stats := ComputeStats(now, profile(85000, 1), expenses)

	if stats.DaysRemaining != 12 {
		t.Fatalf("DaysRemaining = %d, want 12", stats.DaysRemaining)
	}
	if want := decimal.NewFromInt(2070); !stats.TotalSpentThisMonth.Equal(want) {
		t.Errorf("TotalSpentThisMonth = %s, want %s", stats.TotalSpentThisMonth, want)
	}
	if want := decimal.RequireFromString("6910.83"); !stats.DailyLimit.Equal(want) {
		t.Errorf("DailyLimit = %s, want %s", stats.DailyLimit, want)
	}
	if want := decimal.NewFromInt(2070); !stats.SpentToday.Equal(want) {
		t.Errorf("SpentToday = %s, want %s", stats.SpentToday, want)
	}
	if want := decimal.RequireFromString("4840.83"); !stats.RemainingInLimit.Equal(want) {
		t.Errorf("RemainingInLimit = %s, want %s", stats.RemainingInLimit, want)
	}
}

// ==================== clamping ====================

func TestComputeStats_OverspentMonthClampsToZero(t *testing.T) {
	now := date(2025, time.May, 20)
	expenses := []models.Expense{expense(60000, date(2025, time.May, 3))}

	stats := ComputeStats(now, profile(50000, 1), expenses)

	if !stats.DailyLimit.IsZero() {
		t.Errorf("DailyLimit = %s, want 0", stats.DailyLimit)
	}
	if stats.DailyLimit.IsNegative() {
		t.Errorf("DailyLimit is negative: %s", stats.DailyLimit)
	}
}

func TestComputeStats_RemainingInLimitGoesNegative(t *testing.T) {
	now := date(2025, time.May, 20)
	expenses := []models.Expense{expense(9000, now)}

	stats := ComputeStats(now, profile(85000, 1), expenses)

	// dailyLimit = 76000/12 = 6333.33, spentToday = 9000
	if want := decimal.RequireFromString("-2666.67"); !stats.RemainingInLimit.Equal(want) {
		t.Errorf("RemainingInLimit = %s, want %s (must not be clamped)", stats.RemainingInLimit, want)
	}
}

// ==================== soft delete & ordering ====================

func TestComputeStats_SkipsSoftDeleted(t *testing.T) {
	now := date(2025, time.May, 20)
	expenses := []models.Expense{
		expense(1000, now),
		deletedExpense(5000, now),
		deletedExpense(700, date(2025, time.May, 2)),
	}

	stats := ComputeStats(now, profile(85000, 1), expenses)

	if want := decimal.NewFromInt(1000); !stats.TotalSpentThisMonth.Equal(want) {
		t.Errorf("TotalSpentThisMonth = %s, want %s", stats.TotalSpentThisMonth, want)
	}
	if want := decimal.NewFromInt(1000); !stats.SpentToday.Equal(want) {
		t.Errorf("SpentToday = %s, want %s", stats.SpentToday, want)
	}
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	now := date(2025, time.May, 20)
	a := expense(1240, now)
	b := expense(450, date(2025, time.May, 5))
	c := expense(380.55, date(2025, time.May, 12))

	orders := [][]models.Expense{
		{a, b, c},
		{c, a, b},
		{b, c, a},
	}

	first := ComputeStats(now, profile(85000, 1), orders[0])
	for _, order := range orders[1:] {
		got := ComputeStats(now, profile(85000, 1), order)
		if !got.TotalSpentThisMonth.Equal(first.TotalSpentThisMonth) {
			t.Errorf("TotalSpentThisMonth = %s, want %s", got.TotalSpentThisMonth, first.TotalSpentThisMonth)
		}
		if !got.DailyLimit.Equal(first.DailyLimit) {
			t.Errorf("DailyLimit = %s, want %s", got.DailyLimit, first.DailyLimit)
		}
	}
}

func TestComputeStats_SpentTodayOnlyCountsToday(t *testing.T) {
	now := time.Date(2025, time.May, 20, 18, 30, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(100, time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)),
		expense(200, time.Date(2025, time.May, 19, 23, 59, 0, 0, time.UTC)),
	}

	stats := ComputeStats(now, profile(85000, 1), expenses)

	if want := decimal.NewFromInt(100); !stats.SpentToday.Equal(want) {
		t.Errorf("SpentToday = %s, want %s", stats.SpentToday, want)
	}
	if want := decimal.NewFromInt(300); !stats.TotalSpentThisMonth.Equal(want) {
		t.Errorf("TotalSpentThisMonth = %s, want %s", stats.TotalSpentThisMonth, want)
	}
}

// ==================== month boundaries ====================

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2025, time.May, 20, 18, 30, 0, 0, time.UTC))
	if want := date(2025, time.May, 1); !got.Equal(want) {
		t.Errorf("MonthStart = %v, want %v", got, want)
	}
}

func TestMonthEnd(t *testing.T) {
	got := MonthEnd(date(2025, time.December, 15))
	if want := date(2026, time.January, 1); !got.Equal(want) {
		t.Errorf("MonthEnd = %v, want %v", got, want)
	}
}

// ==================== category breakdown ====================

func TestBreakdown(t *testing.T) {
	now := date(2025, time.May, 20)
	expenses := []models.Expense{
		{Amount: decimal.NewFromInt(300), Category: "taxi", SpentAt: now},
		{Amount: decimal.NewFromInt(1200), Category: "food", SpentAt: now},
		{Amount: decimal.NewFromInt(500), Category: "food", SpentAt: now},
		{Amount: decimal.NewFromInt(250), Category: "groceries", SpentAt: now}, // unknown tag
	}

	got := Breakdown(expenses)

	if len(got) != 3 {
		t.Fatalf("len(Breakdown) = %d, want 3", len(got))
	}
	// Fixed display order: food before taxi before other.
	if got[0].Category != "food" || got[1].Category != "taxi" || got[2].Category != "other" {
		t.Fatalf("Breakdown order = [%s %s %s], want [food taxi other]",
			got[0].Category, got[1].Category, got[2].Category)
	}
	if want := decimal.NewFromInt(1700); !got[0].Total.Equal(want) {
		t.Errorf("food total = %s, want %s", got[0].Total, want)
	}
	if want := decimal.NewFromInt(250); !got[2].Total.Equal(want) {
		t.Errorf("other total = %s, want %s", got[2].Total, want)
	}
	if got[0].Name == "" || got[0].Color == "" {
		t.Errorf("breakdown entry missing display metadata: %+v", got[0])
	}
}

func TestBreakdown_SkipsDeletedAndEmpty(t *testing.T) {
	now := date(2025, time.May, 20)
	expenses := []models.Expense{
		deletedExpense(900, now),
	}

	if got := Breakdown(expenses); len(got) != 0 {
		t.Errorf("len(Breakdown) = %d, want 0", len(got))
	}
	if got := Breakdown(nil); len(got) != 0 {
		t.Errorf("len(Breakdown(nil)) = %d, want 0", len(got))
	}
}
