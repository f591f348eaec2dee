package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project is a budget-tracked project, e.g. a renovation or a trip.
//
// The amount spent on a project is never stored. It is always recomputed
// from the project expenses referencing the project so that it cannot
// drift from the actual data, see Project.Spent.
type Project struct {
	DefaultModel
	Name        string          `json:"name" example:"Trip to Osaka"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)" example:"1000"`
	Description string          `json:"description" example:"Two weeks in October"`
}

var (
	ErrProjectNameRequired   = errors.New("please provide a project name")
	ErrProjectBudgetNegative = errors.New("the budget must be a positive number")
)

// BeforeSave validates the project and trims whitespace from all strings.
func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" {
		return ErrProjectNameRequired
	}

	if p.Budget.IsNegative() {
		return ErrProjectBudgetNegative
	}

	return nil
}

// BeforeUpdate verifies the incoming values. BeforeSave only sees the values
// that are already stored, the update values are in the statement.
func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Project)

	if tx.Statement.Changed("Name") && strings.TrimSpace(toSave.Name) == "" {
		return ErrProjectNameRequired
	}

	if tx.Statement.Changed("Budget") && toSave.Budget.IsNegative() {
		return ErrProjectBudgetNegative
	}

	return nil
}

// Spent returns the live sum of all project expenses for this project.
func (p Project) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("project_expenses").
		Where("project_id = ?", p.ID).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting the expenses for project %s failed: %w", p.ID.Hex(), err)
	}

	return sum.Decimal, nil
}

// Expenses returns all project expenses for this project,
// ordered by creation time, newest first.
func (p Project) Expenses(db *gorm.DB) ([]ProjectExpense, error) {
	var expenses []ProjectExpense

	err := db.Where("project_id = ?", p.ID).Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
