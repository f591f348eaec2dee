package models_test

import (
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProjectValidation() {
	tests := []struct {
		name    string
		project models.Project
		err     error
	}{
		{"Valid", models.Project{Name: "Trip", Budget: decimal.NewFromInt(1000)}, nil},
		{"Zero budget is allowed", models.Project{Name: "Trip"}, nil},
		{"Name required", models.Project{Budget: decimal.NewFromInt(1000)}, models.ErrProjectNameRequired},
		{"Name only whitespace", models.Project{Name: "   "}, models.ErrProjectNameRequired},
		{"Negative budget", models.Project{Name: "Trip", Budget: decimal.NewFromInt(-1)}, models.ErrProjectBudgetNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.project).Error

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectTrimsWhitespace() {
	project := suite.createTestProject(models.Project{Name: "  Trip  ", Description: " Two weeks "})

	assert.Equal(suite.T(), "Trip", project.Name)
	assert.Equal(suite.T(), "Two weeks", project.Description)
}

func (suite *TestSuiteStandard) TestProjectIDGenerated() {
	project := suite.createTestProject(models.Project{})

	assert.False(suite.T(), project.ID.IsZero())
	assert.Len(suite.T(), project.ID.Hex(), 24)
}

func (suite *TestSuiteStandard) TestProjectUpdateValidation() {
	project := suite.createTestProject(models.Project{Name: "Trip", Budget: decimal.NewFromInt(1000)})

	err := models.DB.Model(&project).Select("", "Name").Updates(models.Project{Name: ""}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProjectNameRequired)

	err = models.DB.Model(&project).Select("", "Budget").Updates(models.Project{Budget: decimal.NewFromInt(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProjectBudgetNegative)

	err = models.DB.Model(&project).Select("", "Budget").Updates(models.Project{Budget: decimal.NewFromInt(2000)}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestProjectSpent() {
	project := suite.createTestProject(models.Project{Budget: decimal.NewFromInt(1000)})

	spent, err := project.Spent(models.DB)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), spent.IsZero(), "spent is zero without expenses")

	suite.createTestProjectExpense(models.ProjectExpense{ProjectID: project.ID, Amount: decimal.NewFromInt(300)})
	suite.createTestProjectExpense(models.ProjectExpense{ProjectID: project.ID, Amount: decimal.NewFromInt(800)})

	// An expense for another project must not count
	suite.createTestProjectExpense(models.ProjectExpense{Amount: decimal.NewFromInt(999)})

	spent, err = project.Spent(models.DB)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromInt(1100)), "spent is %s", spent)
}

func (suite *TestSuiteStandard) TestProjectExpensesOrder() {
	project := suite.createTestProject(models.Project{})

	first := suite.createTestProjectExpense(models.ProjectExpense{ProjectID: project.ID, Amount: decimal.NewFromInt(10)})
	time.Sleep(10 * time.Millisecond)
	second := suite.createTestProjectExpense(models.ProjectExpense{ProjectID: project.ID, Amount: decimal.NewFromInt(20)})

	expenses, err := project.Expenses(models.DB)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 2)

	assert.Equal(suite.T(), second.ID, expenses[0].ID, "newest expense comes first")
	assert.Equal(suite.T(), first.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestProjectSpentDBError() {
	project := suite.createTestProject(models.Project{})

	suite.CloseDB()

	_, err := project.Spent(models.DB)
	assert.Error(suite.T(), err)
}
