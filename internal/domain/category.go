package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category represents an asset category entity in the domain layer
// Categories are long-lived reference data carrying the fallback useful-life
// policy for assets that do not specify their own override
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string

	// DefaultUsefulLifeYears applies when an asset has no UsefulLifeYears override
	DefaultUsefulLifeYears int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate ensures the category adheres to domain rules
// Returns an error if validation fails
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name cannot be empty")
	}

	if c.DefaultUsefulLifeYears <= 0 {
		return errors.New("default useful life years must be positive")
	}

	return nil
}
