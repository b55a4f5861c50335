package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/studyflash/studyflash/internal/models"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, review models.FlashcardReview) (int64, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ListByFlashcard(ctx context.Context, flashcardID int64) ([]models.FlashcardReview, error) {
	args := m.Called(ctx, flashcardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlashcardReview), args.Error(1)
}

func (m *MockReviewRepository) DifficultyCounts(ctx context.Context, userID int64) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
