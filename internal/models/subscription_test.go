package models_test

import (
	"testing"

	"github.com/pulso-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSubscriptionValidation() {
	tests := []struct {
		name         string
		subscription models.Subscription
		err          error
	}{
		{"billing day zero", models.Subscription{Name: "Streaming", Amount: decimal.NewFromFloat(40)}, models.ErrSubscriptionBillingDayInvalid},
		{"billing day too large", models.Subscription{Name: "Streaming", Amount: decimal.NewFromFloat(40), BillingDay: 32}, models.ErrSubscriptionBillingDayInvalid},
		{"invalid frequency", models.Subscription{Name: "Streaming", Amount: decimal.NewFromFloat(40), BillingDay: 5, Frequency: "weekly"}, models.ErrSubscriptionFrequencyInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.subscription).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSubscriptionDefaults() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name:       " Streaming  ",
		Amount:     decimal.NewFromFloat(39.90),
		BillingDay: 5,
	})

	assert.Equal(suite.T(), "Streaming", subscription.Name)
	assert.Equal(suite.T(), models.FrequencyMonthly, subscription.Frequency)
	assert.Equal(suite.T(), models.SubscriptionStatusActive, subscription.Status)
}

func (suite *TestSuiteStandard) TestSubscriptionTransitions() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name:       "Academia",
		Amount:     decimal.NewFromFloat(120),
		BillingDay: 1,
	})

	// Active subscriptions cannot be resumed
	err := subscription.Resume(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrSubscriptionNotPaused)

	err = subscription.Pause(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.SubscriptionStatusPaused, subscription.Status)

	// Paused subscriptions cannot be paused again
	err = subscription.Pause(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrSubscriptionNotActive)

	err = subscription.Resume(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.SubscriptionStatusActive, subscription.Status)

	err = subscription.Cancel(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.SubscriptionStatusCancelled, subscription.Status)

	// Cancelling is a one-way transition
	err = subscription.Resume(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrSubscriptionCancelled)

	err = subscription.Cancel(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrSubscriptionCancelled)
}
