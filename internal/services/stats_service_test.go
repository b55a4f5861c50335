package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/services"
	"github.com/studyflash/studyflash/internal/testutil/mocks"
)

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestGetStats_TotalsAndStreak(t *testing.T) {
	reviews := new(mocks.MockReviewRepository)
	sessions := new(mocks.MockSessionRepository)
	svc := services.NewStatsService(reviews, sessions)

	reviews.On("DifficultyCounts", mock.Anything, int64(1)).
		Return(map[string]int{"good": 5, "easy": 2, "again": 1}, nil)
	sessions.On("ListByUser", mock.Anything, int64(1)).Return([]models.StudySession{
		{UserID: 1, Date: day(0), FlashcardsStudied: 3},
		{UserID: 1, Date: day(-1), FlashcardsStudied: 4},
		{UserID: 1, Date: day(-2), FlashcardsStudied: 1},
		{UserID: 1, Date: day(-5), FlashcardsStudied: 2}, // gap breaks the streak
	}, nil)

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalReviews)
	assert.Equal(t, 5, stats.DifficultyCounts["good"])
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Len(t, stats.RecentSessions, 4)
}

func TestGetStats_NoActivity(t *testing.T) {
	reviews := new(mocks.MockReviewRepository)
	sessions := new(mocks.MockSessionRepository)
	svc := services.NewStatsService(reviews, sessions)

	reviews.On("DifficultyCounts", mock.Anything, int64(1)).Return(map[string]int{}, nil)
	sessions.On("ListByUser", mock.Anything, int64(1)).Return([]models.StudySession{}, nil)

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.CurrentStreak)
}

func TestGetStats_StaleStreakIsZero(t *testing.T) {
	reviews := new(mocks.MockReviewRepository)
	sessions := new(mocks.MockSessionRepository)
	svc := services.NewStatsService(reviews, sessions)

	reviews.On("DifficultyCounts", mock.Anything, int64(1)).Return(map[string]int{"good": 1}, nil)
	sessions.On("ListByUser", mock.Anything, int64(1)).Return([]models.StudySession{
		{UserID: 1, Date: day(-3), FlashcardsStudied: 1},
	}, nil)

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, stats.CurrentStreak)
}
