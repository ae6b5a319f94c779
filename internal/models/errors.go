package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors
var ErrCategoryNameNotUnique = errors.New("the category name is already in use")

// Installment errors
var (
	ErrInstallmentCountZero        = errors.New("the installment count must be larger than zero")
	ErrInstallmentPaidExceedsCount = errors.New("the number of paid installments cannot exceed the installment count")
	ErrInstallmentNotActive        = errors.New("only active installment plans can have installments marked as paid")
	ErrInstallmentDueDayInvalid    = errors.New("the due day must be between 1 and 31")
)

// Subscription errors
var (
	ErrSubscriptionBillingDayInvalid = errors.New("the billing day must be between 1 and 31")
	ErrSubscriptionFrequencyInvalid  = errors.New("the billing frequency is invalid")
	ErrSubscriptionNotActive         = errors.New("only active subscriptions can be paused")
	ErrSubscriptionNotPaused         = errors.New("only paused subscriptions can be resumed")
	ErrSubscriptionCancelled         = errors.New("the subscription is already cancelled")
	ErrSubscriptionStatusNotEditable = errors.New("the status cannot be updated directly, use the pause, resume and cancel endpoints")
)

// Goal errors
var ErrGoalAmountNotPositive = errors.New("goal amounts must be larger than zero")
