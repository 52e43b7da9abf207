package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// Fixed UUIDs for the default categories so repeated startups are idempotent
var (
	CAT_IT_EQUIPMENT     = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	CAT_OFFICE_FURNITURE = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	CAT_VEHICLES         = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	CAT_MACHINERY        = uuid.MustParse("00000000-0000-0000-0000-000000000104")
)

// CategorySeeder ensures a baseline set of categories exists so freshly
// created assets have somewhere to inherit a useful-life policy from
type CategorySeeder struct {
	repo domain.CategoryRepository
}

// NewCategorySeeder creates a new CategorySeeder instance
func NewCategorySeeder(repo domain.CategoryRepository) *CategorySeeder {
	return &CategorySeeder{
		repo: repo,
	}
}

// Seed ensures all default categories exist in the database
// If a category doesn't exist, it creates it; existing rows are left alone
// (operators may have edited the useful-life defaults)
func (s *CategorySeeder) Seed(ctx context.Context) error {
	defaults := []domain.Category{
		{
			ID:                     CAT_IT_EQUIPMENT,
			Name:                   "IT Equipment",
			Description:            "Computers, servers, network gear",
			DefaultUsefulLifeYears: 3,
		},
		{
			ID:                     CAT_OFFICE_FURNITURE,
			Name:                   "Office Furniture",
			Description:            "Desks, chairs, storage",
			DefaultUsefulLifeYears: 10,
		},
		{
			ID:                     CAT_VEHICLES,
			Name:                   "Vehicles",
			Description:            "Company cars, vans, forklifts",
			DefaultUsefulLifeYears: 8,
		},
		{
			ID:                     CAT_MACHINERY,
			Name:                   "Machinery",
			Description:            "Production and workshop machinery",
			DefaultUsefulLifeYears: 12,
		},
	}

	now := time.Now()

	for _, def := range defaults {
		// Try to get the category by ID
		_, err := s.repo.GetByID(ctx, def.ID)
		if err != nil {
			// Category doesn't exist, create it
			category := def
			category.CreatedAt = now
			category.UpdatedAt = now

			// Validate before creating
			if err := category.Validate(); err != nil {
				return err
			}

			if err := s.repo.Create(ctx, &category); err != nil {
				return err
			}
		}
		// If category exists, no action needed
	}

	return nil
}
