package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/controllers"
	"github.com/pocketledger/backend/internal/objectid"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	response := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:    decimalP(14.50),
		Category:  "Groceries",
		Note:      "Weekly shop",
		ProjectID: objectid.New(),
	})

	assert.True(suite.T(), response.Success)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.ID.IsZero())
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.50)))
	assert.False(suite.T(), response.Data.Date.IsZero(), "date defaults to the current time")
}

// Negative amounts are stored as sent. The dashboard uses them for refunds.
func (suite *TestSuiteStandard) TestExpenseCreateNegativeAmount() {
	response := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:    decimalP(-20),
		Category:  "Refund",
		ProjectID: objectid.New(),
	})

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(-20)))
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Amount missing", controllers.ExpenseEditable{Category: "Groceries", ProjectID: objectid.New()}},
		{"Category missing", controllers.ExpenseEditable{Amount: decimalP(10), ProjectID: objectid.New()}},
		{"Project missing", controllers.ExpenseEditable{Amount: decimalP(10), Category: "Groceries"}},
		{"Broken JSON", `{ "amount": 10, `},
		{"Empty body", ""},
		{"Number as category", `{ "amount": 10, "category": 2 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response controllers.ExpenseResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			require.NotNil(t, response.Error)
			assert.NotEmpty(t, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetSorted() {
	projectID := objectid.New()

	older := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:    decimalP(10),
		Category:  "Groceries",
		ProjectID: projectID,
		Date:      time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:    decimalP(20),
		Category:  "Groceries",
		ProjectID: projectID,
		Date:      time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Success)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID, "newest expense comes first")
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestExpensesGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Success)
	assert.Empty(suite.T(), response.Data)
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, controllers.ExpenseEditable{
					Amount:    decimalP(10),
					Category:  "Groceries",
					ProjectID: objectid.New(),
				}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/expenses", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
