package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/studyflash/studyflash/internal/models"
)

// MockMaterialRepository is a mock implementation of repository.MaterialRepository
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Get(ctx context.Context, id int64) (*models.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *MockMaterialRepository) Insert(ctx context.Context, material models.Material) (int64, error) {
	args := m.Called(ctx, material)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialRepository) ListByUser(ctx context.Context, userID int64) ([]models.Material, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Material), args.Error(1)
}
