package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/objectid"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for dashboard expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenseList)
	r.GET("", GetExpenses)
	r.POST("", CreateExpense)
}

// ExpenseEditable contains all values an expense can be created with.
type ExpenseEditable struct {
	Amount    *decimal.Decimal  `json:"amount" example:"14.50"`                             // The amount spent
	Category  string            `json:"category" example:"Groceries"`                       // Category of the expense
	Note      string            `json:"note" example:"Weekly shop" default:""`              // A note
	ProjectID objectid.ObjectID `json:"projectId" example:"66d9a6f0b7f8a91b0c3e4d5a"`       // ID of the project the expense belongs to. Not checked against the projects
	Date      time.Time         `json:"date" example:"2022-10-02T00:00:00Z" default:"now"`  // Date of the expense. Defaults to the current time
}

// model returns the database resource for the editable fields.
func (editable ExpenseEditable) model() models.Expense {
	var amount decimal.Decimal
	if editable.Amount != nil {
		amount = *editable.Amount
	}

	return models.Expense{
		Amount:    amount,
		Category:  editable.Category,
		Note:      editable.Note,
		ProjectID: editable.ProjectID,
		Date:      editable.Date,
	}
}

// ExpenseListResponse is the response for the expense list endpoint.
type ExpenseListResponse struct {
	Success bool             `json:"success"`         // Whether the request was successful
	Data    []models.Expense `json:"data"`            // List of expenses
	Error   *string          `json:"error,omitempty"` // The error, if any occurred
}

// ExpenseResponse is the response for a single expense.
type ExpenseResponse struct {
	Success bool            `json:"success"`         // Whether the request was successful
	Data    *models.Expense `json:"data,omitempty"`  // The expense
	Error   *string         `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List expenses
// @Description	Returns all expenses, sorted by date, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/expenses [get]
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense

	err := models.DB.Order("date DESC").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Success: true,
		Data:    expenses,
	})
}

// @Summary		Create expense
// @Description	Creates a new expense. The project reference is stored as sent, it is not checked against the projects
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	if editable.Amount == nil {
		e := errExpenseAmountRequired.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{
		Success: true,
		Data:    &expense,
	})
}
