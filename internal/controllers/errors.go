package controllers

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
)

// httpError is the response body for the endpoints that do not wrap their
// payload in a success envelope.
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid ID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Expense errors
var errExpenseAmountRequired = errors.New("please provide an expense amount")

// Income errors
var errIncomeAmountRequired = errors.New("please provide an income amount")

// Project errors
var errProjectBudgetRequired = errors.New("please provide a budget")

// Project expense errors
var errProjectExpenseAmountNotPositive = errors.New("the expense amount must be a positive number")

// Stats errors
var errStatsMonthsInvalid = errors.New("the months parameter must be 3 or 6")
