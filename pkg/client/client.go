// Package client is a Go client for the PocketLedger API.
//
// The client keeps a local replica of the server state. Reads replace the
// replica with the server response, writes apply the change locally as soon
// as the server confirms it. A frontend can render the replica directly
// without re-fetching collections after every mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending entry.
type Expense struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
	ProjectID string          `json:"projectId"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Income is a single income entry.
type Income struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Source    string          `json:"source"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Project is a budgeted project together with its derived budget state.
type Project struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Budget         decimal.Decimal `json:"budget"`
	Description    string          `json:"description"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Delta          decimal.Decimal `json:"delta"`
	PercentageUsed float64         `json:"percentageUsed"`
	OverBudget     bool            `json:"overBudget"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProjectExpense is an expense recorded against a project.
type ProjectExpense struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// State is the local replica of the server state.
type State struct {
	Expenses        []Expense
	Income          []Income
	Projects        []Project
	ProjectExpenses map[string][]ProjectExpense
}

// Client accesses the PocketLedger API.
//
// All methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	state State
}

// New returns a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		state: State{
			ProjectExpenses: make(map[string][]ProjectExpense),
		},
	}
}

// State returns a copy of the local replica.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := State{
		Expenses:        append([]Expense(nil), c.state.Expenses...),
		Income:          append([]Income(nil), c.state.Income...),
		Projects:        append([]Project(nil), c.state.Projects...),
		ProjectExpenses: make(map[string][]ProjectExpense, len(c.state.ProjectExpenses)),
	}

	for id, expenses := range c.state.ProjectExpenses {
		state.ProjectExpenses[id] = append([]ProjectExpense(nil), expenses...)
	}

	return state
}

// envelope is the response wrapper of the expense and income endpoints.
type envelope[T any] struct {
	Success bool    `json:"success"`
	Data    T       `json:"data"`
	Error   *string `json:"error"`
}

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var buf *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(encoded)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
		return fmt.Errorf("%s %s: HTTP %d", method, path, res.StatusCode)
	}

	if target == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(target)
}

// ExpenseCreate is the request body for creating an expense.
type ExpenseCreate struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	ProjectID string          `json:"projectId"`
	Date      *time.Time      `json:"date,omitempty"`
}

// FetchExpenses loads all expenses from the server and replaces the replica.
func (c *Client) FetchExpenses(ctx context.Context) ([]Expense, error) {
	var res envelope[[]Expense]
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &res); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Expenses = res.Data
	c.mu.Unlock()

	return res.Data, nil
}

// AddExpense creates an expense and prepends it to the replica, where the
// list is ordered newest first like the server response.
func (c *Client) AddExpense(ctx context.Context, create ExpenseCreate) (Expense, error) {
	var res envelope[Expense]
	if err := c.do(ctx, http.MethodPost, "/expenses", create, &res); err != nil {
		return Expense{}, err
	}

	c.mu.Lock()
	c.state.Expenses = append([]Expense{res.Data}, c.state.Expenses...)
	c.mu.Unlock()

	return res.Data, nil
}

// IncomeCreate is the request body for creating an income entry.
type IncomeCreate struct {
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
	Note   string          `json:"note,omitempty"`
	Date   *time.Time      `json:"date,omitempty"`
}

// FetchIncome loads all income entries from the server and replaces the
// replica.
func (c *Client) FetchIncome(ctx context.Context) ([]Income, error) {
	var res envelope[[]Income]
	if err := c.do(ctx, http.MethodGet, "/income", nil, &res); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Income = res.Data
	c.mu.Unlock()

	return res.Data, nil
}

// AddIncome creates an income entry and prepends it to the replica, where
// the list is ordered newest first like the server response.
func (c *Client) AddIncome(ctx context.Context, create IncomeCreate) (Income, error) {
	var res envelope[Income]
	if err := c.do(ctx, http.MethodPost, "/income", create, &res); err != nil {
		return Income{}, err
	}

	c.mu.Lock()
	c.state.Income = append([]Income{res.Data}, c.state.Income...)
	c.mu.Unlock()

	return res.Data, nil
}

// ProjectCreate is the request body for creating a project.
type ProjectCreate struct {
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description,omitempty"`
}

// ProjectUpdate is the request body for updating a project. Only fields that
// are set are changed.
type ProjectUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// FetchProjects loads all projects from the server and replaces the replica.
func (c *Client) FetchProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Projects = projects
	c.mu.Unlock()

	return projects, nil
}

// CreateProject creates a project and appends it to the replica.
func (c *Client) CreateProject(ctx context.Context, create ProjectCreate) (Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", create, &project); err != nil {
		return Project{}, err
	}

	c.mu.Lock()
	c.state.Projects = append(c.state.Projects, project)
	c.mu.Unlock()

	return project, nil
}

// UpdateProject updates a project and merges the server response into the
// replica.
func (c *Client) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+id, update, &project); err != nil {
		return Project{}, err
	}

	c.mu.Lock()
	for i := range c.state.Projects {
		if c.state.Projects[i].ID == id {
			c.state.Projects[i] = project
			break
		}
	}
	c.mu.Unlock()

	return project, nil
}

// DeleteProject deletes a project. The project and its recorded expenses
// are removed from the replica. Dashboard expenses assigned to the project
// are kept with their dangling reference, matching the server.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	projects := c.state.Projects[:0]
	for _, project := range c.state.Projects {
		if project.ID != id {
			projects = append(projects, project)
		}
	}
	c.state.Projects = projects

	delete(c.state.ProjectExpenses, id)

	return nil
}

// ProjectExpenseCreate is the request body for recording an expense against
// a project.
type ProjectExpenseCreate struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
}

// FetchProjectExpenses loads the expenses recorded against the project and
// replaces them in the replica.
func (c *Client) FetchProjectExpenses(ctx context.Context, projectID string) ([]ProjectExpense, error) {
	var expenses []ProjectExpense
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/expenses", nil, &expenses); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.ProjectExpenses[projectID] = expenses
	c.mu.Unlock()

	return expenses, nil
}

// AddProjectExpense records an expense against the project. The replica is
// updated in place: the expense is appended and the budget state of the
// project is recomputed locally, matching what the server would return.
func (c *Client) AddProjectExpense(ctx context.Context, projectID string, create ProjectExpenseCreate) (ProjectExpense, error) {
	var expense ProjectExpense
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/expenses", create, &expense); err != nil {
		return ProjectExpense{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.ProjectExpenses[projectID] = append(c.state.ProjectExpenses[projectID], expense)

	for i := range c.state.Projects {
		if c.state.Projects[i].ID != projectID {
			continue
		}

		project := &c.state.Projects[i]
		project.Spent = project.Spent.Add(expense.Amount)
		project.Delta = project.Budget.Sub(project.Spent)

		project.Remaining = project.Delta
		if project.Remaining.IsNegative() {
			project.Remaining = decimal.Zero
		}

		percentage := 0.0
		if project.Budget.IsPositive() {
			percentage = project.Spent.Div(project.Budget).Mul(decimal.NewFromInt(100)).InexactFloat64()
		} else if project.Spent.IsPositive() {
			percentage = 100
		}
		project.PercentageUsed = min(percentage, 100)

		project.OverBudget = project.Spent.GreaterThan(project.Budget)
		break
	}

	return expense, nil
}
