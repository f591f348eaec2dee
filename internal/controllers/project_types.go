package controllers

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/objectid"
	"github.com/pocketledger/backend/internal/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectEditable contains all values a project can be created or
// updated with.
type ProjectEditable struct {
	Name        string           `json:"name" example:"Trip to Osaka"`                   // Name of the project
	Budget      *decimal.Decimal `json:"budget" example:"1000"`                          // Planned budget for the project
	Description string           `json:"description" example:"Two weeks in October" default:""` // A longer description
}

// model returns the database resource for the editable fields.
func (editable ProjectEditable) model() models.Project {
	var budget decimal.Decimal
	if editable.Budget != nil {
		budget = *editable.Budget
	}

	return models.Project{
		Name:        editable.Name,
		Budget:      budget,
		Description: editable.Description,
	}
}

// Project is the API representation of a project. It carries the derived
// budget state, which is recomputed from the project expenses on every read.
type Project struct {
	models.DefaultModel
	Name        string          `json:"name" example:"Trip to Osaka"`
	Budget      decimal.Decimal `json:"budget" example:"1000"`
	Description string          `json:"description" example:"Two weeks in October"`
	report.ProjectRollup
}

// newProject builds the API representation for a project, including the
// recomputed budget state.
func newProject(db *gorm.DB, model models.Project) (Project, error) {
	expenses, err := model.Expenses(db)
	if err != nil {
		return Project{}, err
	}

	return Project{
		DefaultModel:  model.DefaultModel,
		Name:          model.Name,
		Budget:        model.Budget,
		Description:   model.Description,
		ProjectRollup: report.Rollup(model.Budget, expenses),
	}, nil
}

// ProjectDeleteResponse is the response for a successful project deletion.
type ProjectDeleteResponse struct {
	Message   string            `json:"message" example:"Project deleted successfully"`
	DeletedID objectid.ObjectID `json:"deletedId" example:"66d9a6f0b7f8a91b0c3e4d5a"`
}

// ProjectExpenseEditable contains all values a project expense can be
// created with.
type ProjectExpenseEditable struct {
	Amount      *decimal.Decimal `json:"amount" example:"300"`                              // The amount spent, must be positive
	Description string           `json:"description" example:"Flight tickets"`              // What the money was spent on
	Category    string           `json:"category" example:"Travel" default:""`              // Category of the expense
	Date        time.Time        `json:"date" example:"2022-10-02T00:00:00Z" default:"now"` // Date of the expense. Defaults to the current time
}

// model returns the database resource for the editable fields.
func (editable ProjectExpenseEditable) model(projectID objectid.ObjectID) models.ProjectExpense {
	var amount decimal.Decimal
	if editable.Amount != nil {
		amount = *editable.Amount
	}

	return models.ProjectExpense{
		ProjectID:   projectID,
		Amount:      amount,
		Description: editable.Description,
		Category:    editable.Category,
		Date:        editable.Date,
	}
}

// ProjectExpense is the API representation of a project expense.
type ProjectExpense struct {
	ID          objectid.ObjectID `json:"id" example:"66d9a6f0b7f8a91b0c3e4d5b"`
	ProjectID   objectid.ObjectID `json:"projectId" example:"66d9a6f0b7f8a91b0c3e4d5a"`
	Amount      decimal.Decimal   `json:"amount" example:"300"`
	Description string            `json:"description" example:"Flight tickets"`
	Category    string            `json:"category" example:"Travel"`
	Date        time.Time         `json:"date" example:"2022-10-02T00:00:00Z"`
	CreatedAt   time.Time         `json:"createdAt" example:"2022-10-02T10:11:12Z"`
}

// newProjectExpense builds the API representation for a project expense.
func newProjectExpense(model models.ProjectExpense) ProjectExpense {
	return ProjectExpense{
		ID:          model.ID,
		ProjectID:   model.ProjectID,
		Amount:      model.Amount,
		Description: model.Description,
		Category:    model.Category,
		Date:        model.Date,
		CreatedAt:   model.CreatedAt,
	}
}
