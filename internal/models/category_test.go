package models_test

import (
	"strings"

	"github.com/pulso-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "  Moradia\t"
	note := " Rent, water, electricity  "

	category := suite.createTestCategory(models.Category{Name: name, Note: note})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), category.Note)
}

func (suite *TestSuiteStandard) TestCategoryDefaultColor() {
	category := suite.createTestCategory(models.Category{Name: "Lazer"})
	assert.Equal(suite.T(), models.DefaultCategoryColor, category.Color)

	category = suite.createTestCategory(models.Category{Name: "Saúde", Color: "#ef4444"})
	assert.Equal(suite.T(), "#ef4444", category.Color)
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Moradia"})

	err := models.DB.Create(&models.Category{Name: "Moradia"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}
