package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/studyflash/studyflash/internal/models"
)

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Get(ctx context.Context, id int64) (*models.Flashcard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Insert(ctx context.Context, flashcard models.Flashcard) (int64, error) {
	args := m.Called(ctx, flashcard)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateScheduling(ctx context.Context, flashcard models.Flashcard) error {
	args := m.Called(ctx, flashcard)
	return args.Error(0)
}

func (m *MockFlashcardRepository) Due(ctx context.Context, userID int64, now time.Time, limit int) ([]models.Flashcard, error) {
	args := m.Called(ctx, userID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}
