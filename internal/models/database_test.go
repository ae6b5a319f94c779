package models_test

import (
	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var category models.Category

	err := models.DB.First(&category, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.Create(&models.Category{Name: "Closed"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
