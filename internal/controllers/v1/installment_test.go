package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/pulso-app/backend/internal/controllers/v1"
	"github.com/pulso-app/backend/internal/models"
	"github.com/pulso-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestInstallmentsCreate() {
	r := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Notebook",
		TotalAmount: decimal.NewFromFloat(1200),
		Count:       12,
		Paid:        3,
		DueDay:      10,
		StartDate:   time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), "Notebook", r.Data.Description)
	assert.Equal(suite.T(), models.InstallmentStatusActive, r.Data.Status)
	assert.True(suite.T(), decimal.NewFromFloat(100).Equal(r.Data.InstallmentAmount), "Installment amount is %s", r.Data.InstallmentAmount)
	assert.True(suite.T(), decimal.NewFromFloat(900).Equal(r.Data.RemainingAmount), "Remaining amount is %s", r.Data.RemainingAmount)
}

func (suite *TestSuiteStandard) TestInstallmentsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.InstallmentEditable
		err      error
	}{
		{"count zero", v1.InstallmentEditable{Description: "TV", TotalAmount: decimal.NewFromFloat(1000), DueDay: 5}, models.ErrInstallmentCountZero},
		{"due day invalid", v1.InstallmentEditable{Description: "TV", TotalAmount: decimal.NewFromFloat(1000), Count: 10, DueDay: 32}, models.ErrInstallmentDueDayInvalid},
		{"paid exceeds count", v1.InstallmentEditable{Description: "TV", TotalAmount: decimal.NewFromFloat(1000), Count: 10, Paid: 11, DueDay: 5}, models.ErrInstallmentPaidExceedsCount},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/installments", []v1.InstallmentEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.InstallmentCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestInstallmentsGetFilter() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Eletrônicos"})

	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Notebook",
		TotalAmount: decimal.NewFromFloat(3000),
		Count:       10,
		DueDay:      15,
		CategoryID:  &category.Data.ID,
	})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Sofá",
		TotalAmount: decimal.NewFromFloat(1800),
		Count:       6,
		Paid:        6,
		DueDay:      20,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"By category", fmt.Sprintf("category=%s", category.Data.ID), 1},
		{"By status active", "status=active", 1},
		{"By status paid off", "status=paid-off", 1},
		{"Search", "search=note", 1},
		{"Search none", "search=bicicleta", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/installments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InstallmentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestInstallmentsUpdateRecompute verifies that editing the total amount or
// the count recomputes the per-installment amount.
func (suite *TestSuiteStandard) TestInstallmentsUpdateRecompute() {
	installment := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Notebook",
		TotalAmount: decimal.NewFromFloat(1200),
		Count:       12,
		DueDay:      10,
	})

	r := test.Request(suite.T(), http.MethodPatch, installment.Data.Links.Self, map[string]any{
		"count": 6,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, installment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), uint(6), updated.Data.Count)
	assert.True(suite.T(), decimal.NewFromFloat(200).Equal(updated.Data.InstallmentAmount), "Installment amount is %s", updated.Data.InstallmentAmount)
}

// TestInstallmentsUpdateKeepAmount verifies that edits that touch neither the
// total amount nor the count keep the per-installment amount unchanged.
func (suite *TestSuiteStandard) TestInstallmentsUpdateKeepAmount() {
	installment := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Notebook",
		TotalAmount: decimal.NewFromFloat(1200),
		Count:       12,
		DueDay:      10,
	})

	r := test.Request(suite.T(), http.MethodPatch, installment.Data.Links.Self, map[string]any{
		"description": "Notebook novo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Notebook novo", updated.Data.Description)
	assert.True(suite.T(), decimal.NewFromFloat(100).Equal(updated.Data.InstallmentAmount), "Installment amount is %s", updated.Data.InstallmentAmount)
}

func (suite *TestSuiteStandard) TestInstallmentsPayment() {
	installment := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Geladeira",
		TotalAmount: decimal.NewFromFloat(300),
		Count:       3,
		Paid:        1,
		DueDay:      10,
	})

	r := test.Request(suite.T(), http.MethodPost, installment.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var paid v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &paid)
	assert.Equal(suite.T(), uint(2), paid.Data.Paid)
	assert.Equal(suite.T(), models.InstallmentStatusActive, paid.Data.Status)

	// Paying the last installment settles the plan
	r = test.Request(suite.T(), http.MethodPost, installment.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &paid)
	assert.Equal(suite.T(), models.InstallmentStatusPaidOff, paid.Data.Status)

	// A settled plan cannot be paid again
	r = test.Request(suite.T(), http.MethodPost, installment.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrInstallmentNotActive.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestInstallmentsDelete() {
	installment := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Description: "Sofá",
		TotalAmount: decimal.NewFromFloat(1800),
		Count:       6,
		DueDay:      20,
	})

	r := test.Request(suite.T(), http.MethodDelete, installment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, installment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
