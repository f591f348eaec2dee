package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/controllers"
	"github.com/pocketledger/backend/internal/objectid"
	"github.com/pocketledger/backend/internal/types"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestStatsOptions() {
	paths := []string{"categories", "monthly", "overview"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/stats/%s", path), "")
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryStats() {
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(300), Category: "Groceries", ProjectID: objectid.New()})
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(100), Category: "Groceries", ProjectID: objectid.New()})
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(600), Category: "Rent", ProjectID: objectid.New()})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/stats/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.Len(suite.T(), response.Data, 2) {
		return
	}

	assert.Equal(suite.T(), "Rent", response.Data[0].Category)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(600)), "Rent total is %s", response.Data[0].Amount)
	assert.InDelta(suite.T(), 60.0, response.Data[0].Percentage, 0.01)

	assert.Equal(suite.T(), "Groceries", response.Data[1].Category)
	assert.True(suite.T(), response.Data[1].Amount.Equal(decimal.NewFromInt(400)), "Groceries total is %s", response.Data[1].Amount)
	assert.InDelta(suite.T(), 40.0, response.Data[1].Percentage, 0.01)
}

func (suite *TestSuiteStandard) TestCategoryStatsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/stats/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestMonthlyStats() {
	now := time.Now()
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(250), Category: "Groceries", ProjectID: objectid.New(), Date: now})
	_ = createTestIncome(suite.T(), controllers.IncomeEditable{Amount: decimalP(2800), Source: "Salary", Date: now})

	// Older than any window size the endpoint allows.
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(999), Category: "Rent", ProjectID: objectid.New(), Date: now.AddDate(0, -8, 0)})

	tests := []struct {
		query   string
		buckets int
	}{
		{"", 6},
		{"?months=6", 6},
		{"?months=3", 3},
	}

	for _, tt := range tests {
		suite.T().Run("months="+tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/stats/monthly"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.MonthlyStatsResponse
			test.DecodeResponse(t, &r, &response)

			if !assert.Len(t, response.Data, tt.buckets) {
				return
			}

			// The last bucket is the current month.
			last := response.Data[len(response.Data)-1]
			assert.Equal(t, types.MonthOf(now), last.Month)
			assert.True(t, last.Expenses.Equal(decimal.NewFromInt(250)), "Expenses are %s", last.Expenses)
			assert.True(t, last.Income.Equal(decimal.NewFromInt(2800)), "Income is %s", last.Income)
			assert.True(t, last.Net.Equal(decimal.NewFromInt(2550)), "Net is %s", last.Net)

			// Empty months stay at zero.
			first := response.Data[0]
			assert.True(t, first.Expenses.IsZero(), "Expenses are %s", first.Expenses)
			assert.True(t, first.Income.IsZero(), "Income is %s", first.Income)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyStatsInvalidWindow() {
	tests := []string{"?months=5", "?months=0", "?months=-3", "?months=twelve"}

	for _, query := range tests {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/stats/monthly"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response controllers.MonthlyStatsResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestOverviewStats() {
	overBudget := createTestProject(suite.T(), controllers.ProjectEditable{Name: "Kitchen", Budget: decimalP(1000)})
	_ = createTestProjectExpense(suite.T(), overBudget.ID.Hex(), controllers.ProjectExpenseEditable{Amount: decimalP(300), Description: "Counter top"})
	_ = createTestProjectExpense(suite.T(), overBudget.ID.Hex(), controllers.ProjectExpenseEditable{Amount: decimalP(800), Description: "Cabinets"})

	active := createTestProject(suite.T(), controllers.ProjectEditable{Name: "Trip to Osaka", Budget: decimalP(2000)})
	_ = createTestProjectExpense(suite.T(), active.ID.Hex(), controllers.ProjectExpenseEditable{Amount: decimalP(500), Description: "Flight tickets"})

	now := time.Now()
	_ = createTestIncome(suite.T(), controllers.IncomeEditable{Amount: decimalP(2000), Source: "Salary", Date: now})
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(500), Category: "Groceries", ProjectID: objectid.New(), Date: now})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/stats/overview", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.OverviewStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.NotNil(suite.T(), response.Data) {
		return
	}

	assert.True(suite.T(), response.Data.TotalBudget.Equal(decimal.NewFromInt(3000)), "Total budget is %s", response.Data.TotalBudget)
	assert.True(suite.T(), response.Data.TotalSpent.Equal(decimal.NewFromInt(1600)), "Total spent is %s", response.Data.TotalSpent)
	assert.True(suite.T(), response.Data.TotalRemaining.Equal(decimal.NewFromInt(1400)), "Total remaining is %s", response.Data.TotalRemaining)
	assert.Equal(suite.T(), 1, response.Data.Active)
	assert.Equal(suite.T(), 1, response.Data.Completed)

	// 2000 income, 500 expenses in the trailing three months.
	assert.InDelta(suite.T(), 75.0, response.Data.SavingsRate, 0.01)
}

func (suite *TestSuiteStandard) TestOverviewStatsNoIncome() {
	now := time.Now()
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimalP(500), Category: "Groceries", ProjectID: objectid.New(), Date: now})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/stats/overview", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.OverviewStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.NotNil(suite.T(), response.Data) {
		return
	}

	assert.Equal(suite.T(), 0.0, response.Data.SavingsRate)
}

func (suite *TestSuiteStandard) TestStatsDBClosed() {
	paths := []string{"categories", "monthly", "overview"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/stats/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

			suite.SetupTest()
		})
	}
}
