package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/dashboard"
	"github.com/pulso-app/backend/internal/models"
	pulso_uuid "github.com/pulso-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionEditable represents all user configurable parameters
type SubscriptionEditable struct {
	Name       string                    `json:"name" example:"Streaming" default:""`                                           // Name of the service
	Amount     decimal.Decimal           `json:"amount" example:"39.90" default:"0"`                                            // Nominal amount charged per billing cycle
	Frequency  models.Frequency          `json:"frequency" example:"monthly" default:"monthly" enums:"monthly,quarterly,semiannual,annual"` // Billing cadence
	BillingDay int                       `json:"billingDay" example:"3" default:"1"`                                            // Day of month the subscription is billed
	StartDate  time.Time                 `json:"startDate" example:"2026-02-03T00:00:00Z"`                                      // Date the subscription started
	CategoryID *uuid.UUID                `json:"categoryId" example:"d180542c-2711-4bca-a327-c14097a5298c"`                     // ID of the category, null for uncategorized
	Status     models.SubscriptionStatus `json:"status" example:"active" default:"active" enums:"active,paused,cancelled"`      // Lifecycle state
}

func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		Name:       editable.Name,
		Amount:     editable.Amount,
		Frequency:  editable.Frequency,
		BillingDay: editable.BillingDay,
		StartDate:  editable.StartDate,
		CategoryID: editable.CategoryID,
		Status:     editable.Status,
	}
}

type SubscriptionLinks struct {
	Self   string `json:"self" example:"https://example.com/v1/subscriptions/5985d439-0e19-4f8b-b561-9b9a7e2de836"`          // The subscription itself
	Pause  string `json:"pause" example:"https://example.com/v1/subscriptions/5985d439-0e19-4f8b-b561-9b9a7e2de836/pause"`   // Pauses the subscription
	Resume string `json:"resume" example:"https://example.com/v1/subscriptions/5985d439-0e19-4f8b-b561-9b9a7e2de836/resume"` // Resumes a paused subscription
	Cancel string `json:"cancel" example:"https://example.com/v1/subscriptions/5985d439-0e19-4f8b-b561-9b9a7e2de836/cancel"` // Cancels the subscription
}

type Subscription struct {
	models.DefaultModel
	SubscriptionEditable
	Links SubscriptionLinks `json:"links"`

	// These fields are computed
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" example:"39.90"` // Amount normalized to a per-month cost
}

func newSubscription(c *gin.Context, model models.Subscription) Subscription {
	url := c.GetString(string(models.DBContextURL))

	return Subscription{
		DefaultModel: model.DefaultModel,
		SubscriptionEditable: SubscriptionEditable{
			Name:       model.Name,
			Amount:     model.Amount,
			Frequency:  model.Frequency,
			BillingDay: model.BillingDay,
			StartDate:  model.StartDate,
			CategoryID: model.CategoryID,
			Status:     model.Status,
		},
		Links: SubscriptionLinks{
			Self:   fmt.Sprintf("%s/v1/subscriptions/%s", url, model.ID),
			Pause:  fmt.Sprintf("%s/v1/subscriptions/%s/pause", url, model.ID),
			Resume: fmt.Sprintf("%s/v1/subscriptions/%s/resume", url, model.ID),
			Cancel: fmt.Sprintf("%s/v1/subscriptions/%s/cancel", url, model.ID),
		},
		MonthlyAmount: dashboard.MonthlyEquivalent(model.Amount, model.Frequency),
	}
}

type SubscriptionListResponse struct {
	Data       []Subscription `json:"data"`                                                          // List of subscriptions
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type SubscriptionCreateResponse struct {
	Data  []SubscriptionResponse `json:"data"`                                                          // List of the created subscriptions or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *SubscriptionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SubscriptionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionResponse struct {
	Data  *Subscription `json:"data"`                                                          // Data for the subscription
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubscriptionQueryFilter struct {
	Name       string          `form:"name" filterField:"false"`   // By name
	CategoryID pulso_uuid.UUID `form:"category"`                   // By ID of the category
	Frequency  string          `form:"frequency"`                  // By billing cadence
	Status     string          `form:"status"`                     // By lifecycle state
	Search     string          `form:"search" filterField:"false"` // By string in the name
	Offset     uint            `form:"offset" filterField:"false"` // The offset of the first subscription returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`  // Maximum number of subscriptions to return. Defaults to 50.
}

func (f SubscriptionQueryFilter) model() (models.Subscription, error) {
	var categoryID *uuid.UUID
	if f.CategoryID != pulso_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.Subscription{
		CategoryID: categoryID,
		Frequency:  models.Frequency(f.Frequency),
		Status:     models.SubscriptionStatus(f.Status),
	}, nil
}
