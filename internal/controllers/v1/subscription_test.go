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

func (suite *TestSuiteStandard) TestSubscriptionsCreate() {
	r := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})

	assert.Equal(suite.T(), "Streaming", r.Data.Name)
	assert.Equal(suite.T(), models.FrequencyMonthly, r.Data.Frequency)
	assert.Equal(suite.T(), models.SubscriptionStatusActive, r.Data.Status)
	assert.True(suite.T(), decimal.NewFromFloat(39.90).Equal(r.Data.MonthlyAmount), "Monthly amount is %s", r.Data.MonthlyAmount)
}

// TestSubscriptionsMonthlyAmount verifies that the monthly-equivalent amount
// is normalized by the billing cadence.
func (suite *TestSuiteStandard) TestSubscriptionsMonthlyAmount() {
	r := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Backup",
		Amount:     decimal.NewFromFloat(120),
		Frequency:  models.FrequencyAnnual,
		BillingDay: 1,
	})

	assert.True(suite.T(), decimal.NewFromFloat(10).Equal(r.Data.MonthlyAmount), "Monthly amount is %s", r.Data.MonthlyAmount)
}

func (suite *TestSuiteStandard) TestSubscriptionsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.SubscriptionEditable
		err      error
	}{
		{"billing day invalid", v1.SubscriptionEditable{Name: "Streaming", Amount: decimal.NewFromFloat(40)}, models.ErrSubscriptionBillingDayInvalid},
		{"invalid frequency", v1.SubscriptionEditable{Name: "Streaming", Amount: decimal.NewFromFloat(40), BillingDay: 5, Frequency: "weekly"}, models.ErrSubscriptionFrequencyInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/subscriptions", []v1.SubscriptionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SubscriptionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestSubscriptionsGetFilter() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Serviços"})

	_ = createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
		CategoryID: &category.Data.ID,
	})
	_ = createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Backup",
		Amount:     decimal.NewFromFloat(120),
		Frequency:  models.FrequencyAnnual,
		BillingDay: 16,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"By category", fmt.Sprintf("category=%s", category.Data.ID), 1},
		{"By frequency", "frequency=annual", 1},
		{"By status", "status=active", 2},
		{"Search", "search=stream", 1},
		{"Search none", "search=music", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/subscriptions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SubscriptionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestSubscriptionsTransitions walks a subscription through its lifecycle
// using the transition endpoints.
func (suite *TestSuiteStandard) TestSubscriptionsTransitions() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Academia",
		Amount:     decimal.NewFromFloat(120),
		BillingDay: 1,
	})

	r := test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Pause, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.SubscriptionStatusPaused, response.Data.Status)

	// Paused subscriptions cannot be paused again
	r = test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Pause, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Resume, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.SubscriptionStatusActive, response.Data.Status)

	r = test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Cancel, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.SubscriptionStatusCancelled, response.Data.Status)

	// Cancelling is a one-way transition
	r = test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Resume, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var failed v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &failed)
	assert.Equal(suite.T(), models.ErrSubscriptionCancelled.Error(), *failed.Error)
}

func (suite *TestSuiteStandard) TestSubscriptionsUpdate() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})

	r := test.Request(suite.T(), http.MethodPatch, subscription.Data.Links.Self, map[string]any{
		"amount": 44.90,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, subscription.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromFloat(44.90).Equal(updated.Data.Amount), "Amount is %s", updated.Data.Amount)
}

// TestSubscriptionsUpdateStatus verifies that the status is read-only in
// updates so a cancelled subscription cannot be revived with a PATCH.
func (suite *TestSuiteStandard) TestSubscriptionsUpdateStatus() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})

	r := test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Cancel, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, subscription.Data.Links.Self, map[string]any{
		"status": "active",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var failed v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &failed)
	require.NotNil(suite.T(), failed.Error)
	assert.Contains(suite.T(), *failed.Error, models.ErrSubscriptionStatusNotEditable.Error())

	r = test.Request(suite.T(), http.MethodGet, subscription.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), models.SubscriptionStatusCancelled, updated.Data.Status)
}

func (suite *TestSuiteStandard) TestSubscriptionsDelete() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name:       "Streaming",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})

	r := test.Request(suite.T(), http.MethodDelete, subscription.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, subscription.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
