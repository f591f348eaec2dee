package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single income entry, e.g. a salary payment.
type Income struct {
	DefaultModel
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2800"`
	Source string          `json:"source" example:"Salary"`
	Note   string          `json:"note,omitempty" example:"September"`
	Date   time.Time       `json:"date" gorm:"index" example:"2022-09-28T00:00:00Z"`
}

var (
	ErrIncomeAmountNegative = errors.New("the income amount must be a positive number")
	ErrIncomeSourceRequired = errors.New("please provide an income source")
)

// BeforeSave validates the income entry, trims whitespace from all strings
// and defaults the date to the current time.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Source = strings.TrimSpace(i.Source)
	i.Note = strings.TrimSpace(i.Note)

	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	if i.Source == "" {
		return ErrIncomeSourceRequired
	}

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, matching BeforeSave.
func (i *Income) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.Date = i.Date.In(time.UTC)
	return nil
}
