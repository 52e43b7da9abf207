package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// CreateCategoryInput represents the input for creating a category
type CreateCategoryInput struct {
	Name                   string
	Description            string
	DefaultUsefulLifeYears int
}

// UpdateCategoryInput represents the input for editing a category
type UpdateCategoryInput struct {
	Name                   string
	Description            string
	DefaultUsefulLifeYears int
}

// CategoryService handles category administration
type CategoryService struct {
	CategoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

// CreateCategory creates a new category with its useful-life policy
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	now := time.Now()

	category := &domain.Category{
		ID:                     uuid.New(),
		Name:                   input.Name,
		Description:            input.Description,
		DefaultUsefulLifeYears: input.DefaultUsefulLifeYears,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory edits an existing category
// Changing DefaultUsefulLifeYears immediately affects the valuation of every
// asset relying on the category default, since valuations are never cached
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.CategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	category.DefaultUsefulLifeYears = input.DefaultUsefulLifeYears
	category.UpdatedAt = time.Now()

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.CategoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a single category
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.CategoryRepo.GetByID(ctx, id)
}

// ListCategories retrieves all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.CategoryRepo.List(ctx)
}
