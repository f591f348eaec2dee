package models

import (
	"errors"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/objectid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectExpense is an expense that counts against a project's budget.
//
// Project expenses are kept in their own table, separate from the dashboard
// expenses. Deleting a project deletes all of its project expenses.
type ProjectExpense struct {
	DefaultModel
	ProjectID   objectid.ObjectID `json:"projectId" gorm:"index" example:"66d9a6f0b7f8a91b0c3e4d5a"`
	Amount      decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"300"`
	Description string            `json:"description" example:"Flight tickets"`
	Category    string            `json:"category,omitempty" example:"Travel"`
	Date        time.Time         `json:"date" example:"2022-10-02T00:00:00Z"`
}

var (
	ErrProjectExpenseAmountNegative      = errors.New("the expense amount must be a positive number")
	ErrProjectExpenseDescriptionRequired = errors.New("please provide a description")
	ErrProjectExpenseProjectRequired     = errors.New("please provide a project ID")
)

// BeforeSave validates the project expense, trims whitespace from all
// strings and defaults the date to the current time.
func (e *ProjectExpense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)

	if e.ProjectID.IsZero() {
		return ErrProjectExpenseProjectRequired
	}

	if e.Amount.IsNegative() {
		return ErrProjectExpenseAmountNegative
	}

	if e.Description == "" {
		return ErrProjectExpenseDescriptionRequired
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, matching BeforeSave.
func (e *ProjectExpense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}
