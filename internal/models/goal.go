package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalKind describes how a spending goal is interpreted.
type GoalKind string

const (
	// GoalKindLimit is an upper bound the monthly total should stay below.
	GoalKindLimit GoalKind = "limit"
	// GoalKindReduction is a target the monthly total should be reduced to.
	GoalKindReduction GoalKind = "reduction"
)

// Goal is a spending goal the user tracks against their monthly totals.
// Goals are simple preference rows; they do not take part in any
// aggregation.
type Goal struct {
	DefaultModel
	Name   string          `gorm:"uniqueIndex:goal_name"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Kind   GoalKind
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if g.Kind == "" {
		g.Kind = GoalKindLimit
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.Amount) {
		return ErrGoalAmountNotPositive
	}

	return nil
}
