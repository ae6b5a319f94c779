package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name   string          `json:"name" example:"Teto de gastos" default:""`                     // Name of the goal
	Amount decimal.Decimal `json:"amount" example:"2000.00" default:"0"`                         // Target amount, must be positive
	Kind   models.GoalKind `json:"kind" example:"limit" default:"limit" enums:"limit,reduction"` // What the goal aims for
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:   editable.Name,
		Amount: editable.Amount,
		Kind:   editable.Kind,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/v1/goals/f81566d9-af4d-4f13-9e22-c355c6b2b932"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:   model.Name,
			Amount: model.Amount,
			Kind:   model.Kind,
		},
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of the created goals or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Kind   string `form:"kind"`                       // By kind
	Search string `form:"search" filterField:"false"` // By string in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	return models.Goal{
		Kind: models.GoalKind(f.Kind),
	}, nil
}
