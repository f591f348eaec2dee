package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterProjectRoutes registers the routes for projects and their
// expenses with the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", GetProjects)
		r.POST("", CreateProject)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.PUT("/:id", UpdateProject)
		r.DELETE("/:id", DeleteProject)
	}

	// Expenses of a project
	{
		r.OPTIONS("/:id/expenses", OptionsProjectExpenseList)
		r.GET("/:id/expenses", GetProjectExpenses)
		r.POST("/:id/expenses", CreateProjectExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID of the project"
// @Router			/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID of the project"
// @Router			/projects/{id}/expenses [options]
func OptionsProjectExpenseList(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		List projects
// @Description	Returns all projects with their recomputed budget state, sorted by creation time, newest first
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	[]Project
// @Failure		500	{object}	httpError
// @Router			/projects [get]
func GetProjects(c *gin.Context) {
	var projects []models.Project

	err := models.DB.Order("created_at DESC").Find(&projects).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Project, 0, len(projects))
	for _, project := range projects {
		p, err := newProject(models.DB, project)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		data = append(data, p)
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create project
// @Description	Creates a new project
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	Project
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/projects [post]
func CreateProject(c *gin.Context) {
	var editable ProjectEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Budget == nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errProjectBudgetRequired.Error()})
		return
	}

	project := editable.model()

	err = models.DB.Create(&project).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data, err := newProject(models.DB, project)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, data)
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified. The spent amount is recomputed, it cannot be set
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	Project
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the project"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/projects/{id} [put]
func UpdateProject(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var project models.Project
	err := models.DB.First(&project, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProjectEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable ProjectEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&project).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data, err := newProject(models.DB, project)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Delete project
// @Description	Deletes a project and all project expenses referencing it. Dashboard expenses that reference the project are not touched
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectDeleteResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the project"
// @Router			/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var project models.Project
	err := models.DB.First(&project, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&project).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The cascade is a second, separate statement. A crash between the two
	// deletes can leave orphaned project expenses behind.
	err = models.DB.Where("project_id = ?", uri.ID).Delete(&models.ProjectExpense{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProjectDeleteResponse{
		Message:   "Project deleted successfully",
		DeletedID: uri.ID,
	})
}

// @Summary		List project expenses
// @Description	Returns all expenses of a project, sorted by creation time, newest first
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	[]ProjectExpense
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the project"
// @Router			/projects/{id}/expenses [get]
func GetProjectExpenses(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expenses []models.ProjectExpense
	err := models.DB.Where("project_id = ?", uri.ID).Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]ProjectExpense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newProjectExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Add project expense
// @Description	Adds an expense to a project. The project's spent amount increases by the expense amount
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProjectExpense
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string					true	"ID of the project"
// @Param			expense	body		ProjectExpenseEditable	true	"Project expense"
// @Router			/projects/{id}/expenses [post]
func CreateProjectExpense(c *gin.Context) {
	var uri URIID
	if err := httputil.BindID(c, &uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable ProjectExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Amount == nil || !editable.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, httpError{Error: errProjectExpenseAmountNotPositive.Error()})
		return
	}

	if strings.TrimSpace(editable.Description) == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrProjectExpenseDescriptionRequired.Error()})
		return
	}

	var project models.Project
	err = models.DB.First(&project, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense := editable.model(project.ID)

	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newProjectExpense(expense))
}
