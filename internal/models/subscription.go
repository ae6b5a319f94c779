package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Frequency is the billing cadence of a subscription.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

// Frequencies lists all valid billing cadences.
var Frequencies = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual}

// Subscription is an open-ended recurring service charge.
type Subscription struct {
	DefaultModel
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency  Frequency
	BillingDay int // Day of month the subscription is billed, 1-31
	StartDate  time.Time
	CategoryID *uuid.UUID `gorm:"index"`
	Category   *Category  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Status     SubscriptionStatus
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.Status == "" {
		s.Status = SubscriptionStatusActive
	}

	if s.Frequency == "" {
		s.Frequency = FrequencyMonthly
	}

	valid := false
	for _, f := range Frequencies {
		if s.Frequency == f {
			valid = true
		}
	}
	if !valid {
		return ErrSubscriptionFrequencyInvalid
	}

	if s.BillingDay < 1 || s.BillingDay > 31 {
		return ErrSubscriptionBillingDayInvalid
	}

	return nil
}

// Pause suspends an active subscription. Paused subscriptions do not
// contribute to any monthly-equivalent aggregate.
func (s *Subscription) Pause(db *gorm.DB) error {
	if s.Status != SubscriptionStatusActive {
		return ErrSubscriptionNotActive
	}

	s.Status = SubscriptionStatusPaused
	return db.Model(s).Select("Status").Updates(map[string]any{"status": s.Status}).Error
}

// Resume reactivates a paused subscription. Cancelled subscriptions
// cannot be resumed.
func (s *Subscription) Resume(db *gorm.DB) error {
	if s.Status == SubscriptionStatusCancelled {
		return ErrSubscriptionCancelled
	}

	if s.Status != SubscriptionStatusPaused {
		return ErrSubscriptionNotPaused
	}

	s.Status = SubscriptionStatusActive
	return db.Model(s).Select("Status").Updates(map[string]any{"status": s.Status}).Error
}

// Cancel ends a subscription. This is a one-way transition.
func (s *Subscription) Cancel(db *gorm.DB) error {
	if s.Status == SubscriptionStatusCancelled {
		return ErrSubscriptionCancelled
	}

	s.Status = SubscriptionStatusCancelled
	return db.Model(s).Select("Status").Updates(map[string]any{"status": s.Status}).Error
}
