package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InstallmentStatus is the lifecycle state of an installment plan.
type InstallmentStatus string

const (
	InstallmentStatusActive    InstallmentStatus = "active"
	InstallmentStatusPaidOff   InstallmentStatus = "paid-off"
	InstallmentStatusCancelled InstallmentStatus = "cancelled"
)

// Installment is a fixed-count purchase paid in equal parts.
//
// The per-installment amount is computed from the total amount and the
// installment count when the plan is created and only recomputed when one
// of the two is edited.
type Installment struct {
	DefaultModel
	Description       string
	TotalAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InstallmentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Count             uint // Total number of installments
	Paid              uint // Number of installments already paid
	DueDay            int  // Day of month the installment is due, 1-31
	StartDate         time.Time
	CategoryID        *uuid.UUID `gorm:"index"`
	Category          *Category  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Status            InstallmentStatus
}

// PerInstallmentAmount computes the amount of a single installment.
// A count of zero falls back to the full amount so that malformed data
// still renders.
func PerInstallmentAmount(total decimal.Decimal, count uint) decimal.Decimal {
	if count == 0 {
		return total
	}

	return total.Div(decimal.NewFromInt(int64(count)))
}

func (i *Installment) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)

	if i.Status == "" {
		i.Status = InstallmentStatusActive
	}

	if i.Count == 0 {
		return ErrInstallmentCountZero
	}

	if i.DueDay < 1 || i.DueDay > 31 {
		return ErrInstallmentDueDayInvalid
	}

	if i.Paid > i.Count {
		return ErrInstallmentPaidExceedsCount
	}

	// Paying the last installment settles the plan
	if i.Paid == i.Count && i.Status == InstallmentStatusActive {
		i.Status = InstallmentStatusPaidOff
	}

	return nil
}

// MarkPaid records the payment of exactly one installment. Paying the
// last open installment transitions the plan to paid off.
func (i *Installment) MarkPaid(db *gorm.DB) error {
	if i.Status != InstallmentStatusActive {
		return ErrInstallmentNotActive
	}

	i.Paid++
	if i.Paid >= i.Count {
		i.Status = InstallmentStatusPaidOff
	}

	return db.Model(i).Select("Paid", "Status").Updates(map[string]any{
		"paid":   i.Paid,
		"status": i.Status,
	}).Error
}

// Remaining returns the number of unpaid installments.
func (i Installment) Remaining() int {
	if i.Paid > i.Count {
		return 0
	}

	return int(i.Count - i.Paid)
}

// RemainingAmount returns the total value of all unpaid installments.
func (i Installment) RemainingAmount() decimal.Decimal {
	return i.InstallmentAmount.Mul(decimal.NewFromInt(int64(i.Remaining())))
}
