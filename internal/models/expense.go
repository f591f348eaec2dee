package models

import (
	"errors"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/objectid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a day-to-day expense on the dashboard.
//
// ProjectID has to be set, but it is advisory: it is not checked against the
// projects table and deleting a project does not touch the expenses that
// reference it. The amount is stored as sent, negative values included.
type Expense struct {
	DefaultModel
	Amount    decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.50"`
	Category  string            `json:"category" example:"Groceries"`
	Note      string            `json:"note,omitempty" example:"Weekly shop"`
	Date      time.Time         `json:"date" gorm:"index" example:"2022-10-02T00:00:00Z"`
	ProjectID objectid.ObjectID `json:"projectId" gorm:"index" example:"66d9a6f0b7f8a91b0c3e4d5a"`
}

var (
	ErrExpenseCategoryRequired = errors.New("please provide a category")
	ErrExpenseProjectRequired  = errors.New("please provide a project ID")
)

// BeforeSave validates the expense, trims whitespace from all strings and
// defaults the date to the current time.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	if e.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if e.ProjectID.IsZero() {
		return ErrExpenseProjectRequired
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, matching BeforeSave.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}
