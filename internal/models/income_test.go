package models_test

import (
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeValidation() {
	tests := []struct {
		name   string
		income models.Income
		err    error
	}{
		{"Valid", models.Income{Amount: decimal.NewFromInt(2800), Source: "Salary"}, nil},
		{"Zero amount is allowed", models.Income{Source: "Salary"}, nil},
		{"Negative amount", models.Income{Amount: decimal.NewFromInt(-1), Source: "Salary"}, models.ErrIncomeAmountNegative},
		{"Source required", models.Income{Amount: decimal.NewFromInt(2800)}, models.ErrIncomeSourceRequired},
		{"Source only whitespace", models.Income{Amount: decimal.NewFromInt(2800), Source: "  "}, models.ErrIncomeSourceRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.income).Error

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeDateDefaults() {
	income := suite.createTestIncome(models.Income{})

	assert.False(suite.T(), income.Date.IsZero(), "date defaults to the current time")
	assert.WithinDuration(suite.T(), time.Now(), income.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestIncomeTrimsWhitespace() {
	income := suite.createTestIncome(models.Income{Source: " Salary ", Note: " September "})

	assert.Equal(suite.T(), "Salary", income.Source)
	assert.Equal(suite.T(), "September", income.Note)
}
