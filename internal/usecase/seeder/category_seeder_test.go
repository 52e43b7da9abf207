package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func TestCategorySeeder_Seed_CategoriesMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	// Mock GetByID to return "not found" errors for all default categories
	for _, id := range []uuid.UUID{CAT_IT_EQUIPMENT, CAT_OFFICE_FURNITURE, CAT_VEHICLES, CAT_MACHINERY} {
		mockRepo.On("GetByID", ctx, id).Return(nil, errors.New("not found"))
	}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
		return category.ID == CAT_IT_EQUIPMENT &&
			category.Name == "IT Equipment" &&
			category.DefaultUsefulLifeYears == 3
	})).Return(nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
		return category.ID == CAT_OFFICE_FURNITURE &&
			category.Name == "Office Furniture" &&
			category.DefaultUsefulLifeYears == 10
	})).Return(nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
		return category.ID == CAT_VEHICLES &&
			category.Name == "Vehicles" &&
			category.DefaultUsefulLifeYears == 8
	})).Return(nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
		return category.ID == CAT_MACHINERY &&
			category.Name == "Machinery" &&
			category.DefaultUsefulLifeYears == 12
	})).Return(nil)

	// Execute
	err := seeder.Seed(ctx)

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	// Verify Create was called 4 times (once for each default category)
	mockRepo.AssertNumberOfCalls(t, "Create", 4)
}

func TestCategorySeeder_Seed_CategoriesAlreadyExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	// Existing rows are left untouched, even with edited defaults
	for _, id := range []uuid.UUID{CAT_IT_EQUIPMENT, CAT_OFFICE_FURNITURE, CAT_VEHICLES, CAT_MACHINERY} {
		mockRepo.On("GetByID", ctx, id).Return(&domain.Category{
			ID:                     id,
			Name:                   "Existing",
			DefaultUsefulLifeYears: 99,
		}, nil)
	}

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCategorySeeder_Seed_CreateFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	mockRepo.On("GetByID", ctx, CAT_IT_EQUIPMENT).Return(nil, errors.New("not found"))
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
}
