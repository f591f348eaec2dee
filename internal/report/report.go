// Package report implements the derived views over the stored collections.
//
// All functions are pure: they only read their inputs, never touch the
// database and are safe to call repeatedly and in any order. An empty input
// collection always produces a well-defined zero result, never an error.
package report

import (
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the amount spent in a single expense category.
type CategoryTotal struct {
	Category   string          `json:"category" example:"Groceries"`
	Amount     decimal.Decimal `json:"amount" example:"119.20"`
	Percentage float64         `json:"percentage" example:"34.5"` // Share of the total spent, in percent
}

// CategoryTotals groups the expenses by category and sums the amounts per
// group. The result is sorted by amount, largest first, with the category
// name as tie-breaker. Percentages are 0 when the total spent is 0.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, expense := range expenses {
		sums[expense.Category] = sums[expense.Category].Add(expense.Amount)
		total = total.Add(expense.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	if !total.IsZero() {
		for i := range totals {
			totals[i].Percentage = totals[i].Amount.Div(total).Mul(hundred).InexactFloat64()
		}
	}

	return totals
}

// MonthBucket is the activity within a single calendar month.
type MonthBucket struct {
	Month    types.Month     `json:"month" example:"2022-10"`
	Expenses decimal.Decimal `json:"expenses" example:"1320.50"`
	Income   decimal.Decimal `json:"income" example:"2800"`
	Net      decimal.Decimal `json:"net" example:"1479.50"` // Income minus expenses
}

// MonthlyTrend buckets expenses and income into the trailing window of
// months calendar months, ending with the month of now.
//
// The window always contains exactly months buckets. Months without any
// activity stay at zero, and activity outside the window is dropped.
func MonthlyTrend(expenses []models.Expense, income []models.Income, months int, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, max(months, 0))

	current := types.MonthOf(now)
	for i := 1 - months; i <= 0; i++ {
		buckets = append(buckets, MonthBucket{
			Month:    current.AddDate(0, i),
			Expenses: decimal.Zero,
			Income:   decimal.Zero,
			Net:      decimal.Zero,
		})
	}

	bucketFor := func(t time.Time) int {
		return slices.IndexFunc(buckets, func(b MonthBucket) bool {
			return b.Month.Contains(t)
		})
	}

	for _, expense := range expenses {
		if i := bucketFor(expense.Date); i >= 0 {
			buckets[i].Expenses = buckets[i].Expenses.Add(expense.Amount)
		}
	}

	for _, entry := range income {
		if i := bucketFor(entry.Date); i >= 0 {
			buckets[i].Income = buckets[i].Income.Add(entry.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expenses)
	}

	return buckets
}

// ProjectRollup is the derived budget state of a single project.
//
// Remaining is clamped at zero and PercentageUsed at 100 so that they can be
// rendered directly. Delta keeps the signed difference between budget and
// spent, and OverBudget reflects the unclamped ratio.
type ProjectRollup struct {
	Spent          decimal.Decimal `json:"spent" example:"1100"`
	Remaining      decimal.Decimal `json:"remaining" example:"0"`
	Delta          decimal.Decimal `json:"delta" example:"-100"`
	PercentageUsed float64         `json:"percentageUsed" example:"100"`
	OverBudget     bool            `json:"overBudget" example:"true"`
}

// Rollup computes the derived budget state for a project with the given
// budget from its project expenses. The result is the same regardless of the
// order of the expenses.
func Rollup(budget decimal.Decimal, expenses []models.ProjectExpense) ProjectRollup {
	spent := decimal.Zero
	for _, expense := range expenses {
		spent = spent.Add(expense.Amount)
	}

	delta := budget.Sub(spent)

	remaining := delta
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	// With a zero budget, any spending at all uses the full budget
	percentage := 0.0
	if budget.IsPositive() {
		percentage = spent.Div(budget).Mul(hundred).InexactFloat64()
	} else if spent.IsPositive() {
		percentage = 100
	}
	percentage = min(percentage, 100)

	return ProjectRollup{
		Spent:          spent,
		Remaining:      remaining,
		Delta:          delta,
		PercentageUsed: percentage,
		OverBudget:     spent.GreaterThan(budget),
	}
}

// SavingsRate returns the share of the total income that was not spent, in
// percent. It is 0 when there is no income, regardless of the expenses.
func SavingsRate(income []models.Income, expenses []models.Expense) float64 {
	totalIncome := decimal.Zero
	for _, entry := range income {
		totalIncome = totalIncome.Add(entry.Amount)
	}

	if !totalIncome.IsPositive() {
		return 0
	}

	totalExpenses := decimal.Zero
	for _, expense := range expenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
	}

	return totalIncome.Sub(totalExpenses).Div(totalIncome).Mul(hundred).InexactFloat64()
}

// ProjectFigures is the input to Overview: the budget of a project together
// with its spent sum.
type ProjectFigures struct {
	Budget decimal.Decimal
	Spent  decimal.Decimal
}

// ProjectsOverview summarizes all projects.
type ProjectsOverview struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"5000"`
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"2200"`
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"2800"` // Signed, negative when over budget overall
	Active         int             `json:"active" example:"2"`            // Projects that have budget left
	Completed      int             `json:"completed" example:"1"`         // Projects that used their full budget
}

// Overview sums budgets and spent amounts over all projects. A project
// counts as completed once its spent amount reaches its budget.
func Overview(projects []ProjectFigures) ProjectsOverview {
	overview := ProjectsOverview{
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}

	for _, project := range projects {
		overview.TotalBudget = overview.TotalBudget.Add(project.Budget)
		overview.TotalSpent = overview.TotalSpent.Add(project.Spent)

		if project.Spent.GreaterThanOrEqual(project.Budget) {
			overview.Completed++
		} else {
			overview.Active++
		}
	}

	overview.TotalRemaining = overview.TotalBudget.Sub(overview.TotalSpent)

	return overview
}
