package models

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultCategoryColor is used for categories created without an explicit color.
const DefaultCategoryColor = "#6366f1"

// Category is a user defined label for commitments. Its color is used
// consistently across all charts and badges.
type Category struct {
	DefaultModel
	Name  string `gorm:"uniqueIndex"`
	Color string
	Note  string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	return nil
}
