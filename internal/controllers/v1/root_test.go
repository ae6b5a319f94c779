package v1_test

import (
	"net/http"

	v1 "github.com/pulso-app/backend/internal/controllers/v1"
	"github.com/pulso-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestV1Get() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/categories", response.Links.Categories)
	assert.Equal(suite.T(), "http://example.com/v1/installments", response.Links.Installments)
	assert.Equal(suite.T(), "http://example.com/v1/subscriptions", response.Links.Subscriptions)
	assert.Equal(suite.T(), "http://example.com/v1/goals", response.Links.Goals)
	assert.Equal(suite.T(), "http://example.com/v1/dashboard", response.Links.Dashboard)
	assert.Equal(suite.T(), "http://example.com/v1/export", response.Links.Export)
}

func (suite *TestSuiteStandard) TestV1Options() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

// TestCleanup verifies that the cleanup endpoint deletes all data.
func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Moradia"})
	_ = createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Notebook",
		TotalAmount: decimal.NewFromFloat(1200),
		Count:       12,
		DueDay:      10,
	})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Teto de gastos", Amount: decimal.NewFromFloat(2000)})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{"categories", "installments", "subscriptions", "goals"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		require.Empty(suite.T(), response.Data, "Resources at %s still exist after cleanup", path)
	}
}

// TestCleanupConfirmation verifies that cleanup does not run without the
// confirmation parameter.
func (suite *TestSuiteStandard) TestCleanupConfirmation() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Moradia"})

	tests := []string{
		"http://example.com/v1",
		"http://example.com/v1?confirm=yes",
	}

	for _, url := range tests {
		r := test.Request(suite.T(), http.MethodDelete, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}
