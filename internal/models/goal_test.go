package models_test

import (
	"strings"

	"github.com/pulso-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrGoalAmountNotPositive},
		{decimal.NewFromFloat(0), models.ErrGoalAmountNotPositive},
		{decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		g := models.Goal{
			Amount: tt.amount,
		}

		err := g.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestGoalDefaults() {
	name := "  Stay below budget \t"

	goal := suite.createTestGoal(models.Goal{
		Name:   name,
		Amount: decimal.NewFromFloat(2000),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), models.GoalKindLimit, goal.Kind)
}

func (suite *TestSuiteStandard) TestGoalNotPositive() {
	err := models.DB.Create(&models.Goal{
		Name:   "Invalid",
		Amount: decimal.NewFromFloat(-100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrGoalAmountNotPositive)
}
