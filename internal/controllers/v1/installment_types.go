package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/models"
	pulso_uuid "github.com/pulso-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentEditable represents all user configurable parameters
type InstallmentEditable struct {
	Description string                   `json:"description" example:"Notebook" default:""`                            // What was bought
	TotalAmount decimal.Decimal          `json:"totalAmount" example:"1200.00" default:"0"`                            // Total amount of the purchase
	Count       uint                     `json:"count" example:"12" default:"0"`                                       // Number of installments
	Paid        uint                     `json:"paid" example:"3" default:"0"`                                         // Number of installments already paid
	DueDay      int                      `json:"dueDay" example:"10" default:"1"`                                      // Day of month an installment is due
	StartDate   time.Time                `json:"startDate" example:"2026-05-10T00:00:00Z"`                             // Date of the purchase
	CategoryID  *uuid.UUID               `json:"categoryId" example:"d180542c-2711-4bca-a327-c14097a5298c"`            // ID of the category, null for uncategorized
	Status      models.InstallmentStatus `json:"status" example:"active" default:"active" enums:"active,paid-off,cancelled"` // Lifecycle state
}

func (editable InstallmentEditable) model() models.Installment {
	return models.Installment{
		Description:       editable.Description,
		TotalAmount:       editable.TotalAmount,
		InstallmentAmount: models.PerInstallmentAmount(editable.TotalAmount, editable.Count),
		Count:             editable.Count,
		Paid:              editable.Paid,
		DueDay:            editable.DueDay,
		StartDate:         editable.StartDate,
		CategoryID:        editable.CategoryID,
		Status:            editable.Status,
	}
}

type InstallmentLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/installments/d89bfe8e-8b09-4bef-8102-2e3dc59f9133"`            // The installment plan itself
	Payments string `json:"payments" example:"https://example.com/v1/installments/d89bfe8e-8b09-4bef-8102-2e3dc59f9133/payments"` // Registers a payment for the plan
}

type Installment struct {
	models.DefaultModel
	InstallmentEditable
	Links InstallmentLinks `json:"links"`

	// These fields are computed
	InstallmentAmount decimal.Decimal `json:"installmentAmount" example:"100.00"` // Amount of a single installment
	RemainingAmount   decimal.Decimal `json:"remainingAmount" example:"900.00"`   // Amount not yet paid
}

func newInstallment(c *gin.Context, model models.Installment) Installment {
	url := c.GetString(string(models.DBContextURL))

	return Installment{
		DefaultModel: model.DefaultModel,
		InstallmentEditable: InstallmentEditable{
			Description: model.Description,
			TotalAmount: model.TotalAmount,
			Count:       model.Count,
			Paid:        model.Paid,
			DueDay:      model.DueDay,
			StartDate:   model.StartDate,
			CategoryID:  model.CategoryID,
			Status:      model.Status,
		},
		Links: InstallmentLinks{
			Self:     fmt.Sprintf("%s/v1/installments/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/installments/%s/payments", url, model.ID),
		},
		InstallmentAmount: model.InstallmentAmount,
		RemainingAmount:   model.RemainingAmount(),
	}
}

type InstallmentListResponse struct {
	Data       []Installment `json:"data"`                                                          // List of installment plans
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type InstallmentCreateResponse struct {
	Data  []InstallmentResponse `json:"data"`                                                          // List of the created installment plans or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *InstallmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InstallmentResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InstallmentResponse struct {
	Data  *Installment `json:"data"`                                                          // Data for the installment plan
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InstallmentQueryFilter struct {
	Description string          `form:"description" filterField:"false"` // By description
	CategoryID  pulso_uuid.UUID `form:"category"`                        // By ID of the category
	Status      string          `form:"status"`                          // By lifecycle state
	Search      string          `form:"search" filterField:"false"`      // By string in the description
	Offset      uint            `form:"offset" filterField:"false"`      // The offset of the first plan returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`       // Maximum number of plans to return. Defaults to 50.
}

func (f InstallmentQueryFilter) model() (models.Installment, error) {
	var categoryID *uuid.UUID
	if f.CategoryID != pulso_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.Installment{
		CategoryID: categoryID,
		Status:     models.InstallmentStatus(f.Status),
	}, nil
}
