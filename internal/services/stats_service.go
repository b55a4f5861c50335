package services

import (
	"context"
	"time"

	"github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

// StudyStats summarizes a user's review history and daily activity.
type StudyStats struct {
	TotalReviews     int                   `json:"total_reviews"`
	DifficultyCounts map[string]int        `json:"difficulty_counts"`
	CurrentStreak    int                   `json:"current_streak"`
	RecentSessions   []models.StudySession `json:"recent_sessions"`
}

// StatsService produces read-only study statistics.
type StatsService interface {
	GetStats(ctx context.Context, userID int64) (*StudyStats, error)
}

type statsService struct {
	reviews  repository.ReviewRepository
	sessions repository.SessionRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(reviews repository.ReviewRepository, sessions repository.SessionRepository) StatsService {
	return &statsService{reviews: reviews, sessions: sessions}
}

func (s *statsService) GetStats(ctx context.Context, userID int64) (*StudyStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing study stats: user_id=%d", userID)

	counts, err := s.reviews.DifficultyCounts(ctx, userID)
	if err != nil {
		log.Error("failed to count reviews: %v", err)
		return nil, errors.NewInternalError(err)
	}
	total := 0
	for _, n := range counts {
		total += n
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list study sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	recent := sessions
	if len(recent) > 30 {
		recent = recent[:30]
	}

	return &StudyStats{
		TotalReviews:     total,
		DifficultyCounts: counts,
		CurrentStreak:    streak(sessions, time.Now().UTC()),
		RecentSessions:   recent,
	}, nil
}

// streak counts consecutive active days ending today or yesterday.
// Sessions must be sorted by date descending.
func streak(sessions []models.StudySession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	day := now.Truncate(24 * time.Hour)
	latest, err := time.Parse("2006-01-02", sessions[0].Date)
	if err != nil {
		return 0
	}
	// A streak is still alive if the last activity was yesterday.
	if latest.Before(day.AddDate(0, 0, -1)) {
		return 0
	}

	count := 1
	prev := latest
	for _, s := range sessions[1:] {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			break
		}
		if !d.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		count++
		prev = d
	}
	return count
}
