package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/studyflash/studyflash/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Increment(ctx context.Context, userID int64, day string, delta models.SessionDelta) (*models.StudySession, error) {
	args := m.Called(ctx, userID, day, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudySession), args.Error(1)
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID int64) ([]models.StudySession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudySession), args.Error(1)
}
