package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pulso-app/backend/internal/controllers/v1"
	"github.com/pulso-app/backend/internal/models"
	"github.com/pulso-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	r := createTestGoal(suite.T(), v1.GoalEditable{
		Name:   "Teto de gastos",
		Amount: decimal.NewFromFloat(2000),
	})

	assert.Equal(suite.T(), "Teto de gastos", r.Data.Name)
	assert.Equal(suite.T(), models.GoalKindLimit, r.Data.Kind)
}

func (suite *TestSuiteStandard) TestGoalsCreateNotPositive() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{{
		Name:   "Invalid",
		Amount: decimal.NewFromFloat(-100),
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.ErrGoalAmountNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Teto de gastos", Amount: decimal.NewFromFloat(2000)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Reduzir assinaturas", Amount: decimal.NewFromFloat(150), Kind: models.GoalKindReduction})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"By kind", "kind=reduction", 1},
		{"By name", "name=Teto de gastos", 1},
		{"Search", "search=assinatura", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdateDelete() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Teto de gastos", Amount: decimal.NewFromFloat(2000)})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"amount": 1800,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromFloat(1800).Equal(updated.Data.Amount), "Amount is %s", updated.Data.Amount)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
