package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterIncomeRoutes registers the routes for income entries with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncomeList)
	r.GET("", GetIncome)
	r.POST("", CreateIncome)
}

// IncomeEditable contains all values an income entry can be created with.
type IncomeEditable struct {
	Amount *decimal.Decimal `json:"amount" example:"2800"`                             // The amount received
	Source string           `json:"source" example:"Salary"`                           // Where the income came from
	Note   string           `json:"note" example:"September" default:""`               // A note
	Date   time.Time        `json:"date" example:"2022-09-28T00:00:00Z" default:"now"` // Date of the income. Defaults to the current time
}

// model returns the database resource for the editable fields.
func (editable IncomeEditable) model() models.Income {
	var amount decimal.Decimal
	if editable.Amount != nil {
		amount = *editable.Amount
	}

	return models.Income{
		Amount: amount,
		Source: editable.Source,
		Note:   editable.Note,
		Date:   editable.Date,
	}
}

// IncomeListResponse is the response for the income list endpoint.
type IncomeListResponse struct {
	Success bool            `json:"success"`         // Whether the request was successful
	Data    []models.Income `json:"data"`            // List of income entries
	Error   *string         `json:"error,omitempty"` // The error, if any occurred
}

// IncomeResponse is the response for a single income entry.
type IncomeResponse struct {
	Success bool           `json:"success"`         // Whether the request was successful
	Data    *models.Income `json:"data,omitempty"`  // The income entry
	Error   *string        `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/income [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List income
// @Description	Returns all income entries, sorted by date, newest first
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/income [get]
func GetIncome(c *gin.Context) {
	var income []models.Income

	err := models.DB.Order("date DESC").Find(&income).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Success: true,
		Data:    income,
	})
}

// @Summary		Create income
// @Description	Creates a new income entry
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/income [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	if editable.Amount == nil {
		e := errIncomeAmountRequired.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{Error: &e})
		return
	}

	income := editable.model()

	err = models.DB.Create(&income).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{
		Success: true,
		Data:    &income,
	})
}
