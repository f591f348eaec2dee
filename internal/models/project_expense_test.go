package models_test

import (
	"testing"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/objectid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProjectExpenseValidation() {
	projectID := suite.createTestProject(models.Project{}).ID

	tests := []struct {
		name    string
		expense models.ProjectExpense
		err     error
	}{
		{"Valid", models.ProjectExpense{ProjectID: projectID, Amount: decimal.NewFromInt(300), Description: "Flight tickets"}, nil},
		{"Project required", models.ProjectExpense{Amount: decimal.NewFromInt(300), Description: "Flight tickets"}, models.ErrProjectExpenseProjectRequired},
		{"Negative amount", models.ProjectExpense{ProjectID: projectID, Amount: decimal.NewFromInt(-1), Description: "Refund"}, models.ErrProjectExpenseAmountNegative},
		{"Description required", models.ProjectExpense{ProjectID: projectID, Amount: decimal.NewFromInt(300)}, models.ErrProjectExpenseDescriptionRequired},
		{"Description only whitespace", models.ProjectExpense{ProjectID: projectID, Amount: decimal.NewFromInt(300), Description: "   "}, models.ErrProjectExpenseDescriptionRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectExpenseTrimsWhitespace() {
	expense := suite.createTestProjectExpense(models.ProjectExpense{
		ProjectID:   objectid.New(),
		Description: " Flight tickets ",
		Category:    " Travel ",
	})

	assert.Equal(suite.T(), "Flight tickets", expense.Description)
	assert.Equal(suite.T(), "Travel", expense.Category)
}

func (suite *TestSuiteStandard) TestProjectExpenseDateDefaults() {
	expense := suite.createTestProjectExpense(models.ProjectExpense{})

	assert.False(suite.T(), expense.Date.IsZero(), "date defaults to the current time")
}
