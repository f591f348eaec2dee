package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/report"
	"github.com/pocketledger/backend/internal/types"
)

// RegisterStatsRoutes registers the routes for the derived statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", OptionsStats)
	r.GET("/categories", GetCategoryStats)

	r.OPTIONS("/monthly", OptionsStats)
	r.GET("/monthly", GetMonthlyStats)

	r.OPTIONS("/overview", OptionsStats)
	r.GET("/overview", GetOverviewStats)
}

// CategoryStatsResponse is the response for the category statistics.
type CategoryStatsResponse struct {
	Data  []report.CategoryTotal `json:"data"`            // Per-category totals, largest first
	Error *string                `json:"error,omitempty"` // The error, if any occurred
}

// MonthlyStatsResponse is the response for the monthly statistics.
type MonthlyStatsResponse struct {
	Data  []report.MonthBucket `json:"data"`            // One bucket per month in the window, oldest first
	Error *string              `json:"error,omitempty"` // The error, if any occurred
}

// OverviewStats is the summary over all projects together with the savings
// rate of the trailing three months.
type OverviewStats struct {
	report.ProjectsOverview
	SavingsRate float64 `json:"savingsRate" example:"52.8"` // Savings rate of the trailing three months, in percent
}

// OverviewStatsResponse is the response for the overview statistics.
type OverviewStatsResponse struct {
	Data  *OverviewStats `json:"data"`            // The overview
	Error *string        `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/stats/categories [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Category statistics
// @Description	Returns the spending per category, largest first, with the share of the total
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	CategoryStatsResponse
// @Failure		500	{object}	CategoryStatsResponse
// @Router			/stats/categories [get]
func GetCategoryStats(c *gin.Context) {
	var expenses []models.Expense

	err := models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryStatsResponse{
		Data: report.CategoryTotals(expenses),
	})
}

// @Summary		Monthly statistics
// @Description	Returns expense and income totals for the trailing window of calendar months. The window always has exactly the requested number of months, empty months stay at zero
// @Tags			Stats
// @Produce		json
// @Success		200		{object}	MonthlyStatsResponse
// @Failure		400		{object}	MonthlyStatsResponse
// @Failure		500		{object}	MonthlyStatsResponse
// @Param			months	query		int	false	"Number of months in the window, 3 or 6. Defaults to 6"
// @Router			/stats/monthly [get]
func GetMonthlyStats(c *gin.Context) {
	var params struct {
		Months int `form:"months,default=6"`
	}

	err := c.Bind(&params)
	if err != nil || (params.Months != 3 && params.Months != 6) {
		e := errStatsMonthsInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyStatsResponse{Error: &e})
		return
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyStatsResponse{Error: &e})
		return
	}

	var income []models.Income
	err = models.DB.Find(&income).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthlyStatsResponse{
		Data: report.MonthlyTrend(expenses, income, params.Months, time.Now()),
	})
}

// @Summary		Overview statistics
// @Description	Returns the summary over all projects and the savings rate of the trailing three months
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	OverviewStatsResponse
// @Failure		500	{object}	OverviewStatsResponse
// @Router			/stats/overview [get]
func GetOverviewStats(c *gin.Context) {
	var projects []models.Project

	err := models.DB.Find(&projects).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverviewStatsResponse{Error: &e})
		return
	}

	figures := make([]report.ProjectFigures, 0, len(projects))
	for _, project := range projects {
		spent, err := project.Spent(models.DB)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), OverviewStatsResponse{Error: &e})
			return
		}

		figures = append(figures, report.ProjectFigures{
			Budget: project.Budget,
			Spent:  spent,
		})
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverviewStatsResponse{Error: &e})
		return
	}

	var income []models.Income
	err = models.DB.Find(&income).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverviewStatsResponse{Error: &e})
		return
	}

	window := trailingMonths(3, time.Now())

	c.JSON(http.StatusOK, OverviewStatsResponse{
		Data: &OverviewStats{
			ProjectsOverview: report.Overview(figures),
			SavingsRate:      report.SavingsRate(incomeIn(window, income), expensesIn(window, expenses)),
		},
	})
}

// trailingMonths returns the months of the trailing window of the given
// size, ending with the month of now.
func trailingMonths(months int, now time.Time) []types.Month {
	window := make([]types.Month, 0, months)

	current := types.MonthOf(now)
	for i := 1 - months; i <= 0; i++ {
		window = append(window, current.AddDate(0, i))
	}

	return window
}

func expensesIn(window []types.Month, expenses []models.Expense) []models.Expense {
	var matching []models.Expense
	for _, expense := range expenses {
		for _, month := range window {
			if month.Contains(expense.Date) {
				matching = append(matching, expense)
				break
			}
		}
	}

	return matching
}

func incomeIn(window []types.Month, income []models.Income) []models.Income {
	var matching []models.Income
	for _, entry := range income {
		for _, month := range window {
			if month.Contains(entry.Date) {
				matching = append(matching, entry)
				break
			}
		}
	}

	return matching
}
