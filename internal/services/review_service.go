package services

import (
	"context"
	"sync"
	"time"

	"github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
	"github.com/studyflash/studyflash/internal/srs"
)

// dueLimit caps the due queue at 50 cards per request.
const dueLimit = 50

// ReviewResult is the outcome of a submitted review.
type ReviewResult struct {
	Flashcard  models.Flashcard `json:"flashcard"`
	NextReview time.Time        `json:"next_review"`
}

// ReviewService handles flashcard review business logic
type ReviewService interface {
	SubmitReview(ctx context.Context, userID, flashcardID int64, difficulty srs.Difficulty) (*ReviewResult, error)
	DueFlashcards(ctx context.Context, userID int64) ([]models.Flashcard, error)
	ReviewHistory(ctx context.Context, userID, flashcardID int64) ([]models.FlashcardReview, error)
}

type reviewService struct {
	flashcards repository.FlashcardRepository
	materials  repository.MaterialRepository
	reviews    repository.ReviewRepository
	sessions   repository.SessionRepository
	atomic     repository.Atomic
	locks      cardLocks
}

// NewReviewService creates a new ReviewService. All four repositories are
// required: the review flow touches the flashcard, its owning material,
// the history log, and the daily aggregate on every call.
func NewReviewService(
	flashcards repository.FlashcardRepository,
	materials repository.MaterialRepository,
	reviews repository.ReviewRepository,
	sessions repository.SessionRepository,
	atomic repository.Atomic,
) ReviewService {
	return &reviewService{
		flashcards: flashcards,
		materials:  materials,
		reviews:    reviews,
		sessions:   sessions,
		atomic:     atomic,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, userID, flashcardID int64, difficulty srs.Difficulty) (*ReviewResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting review: flashcard_id=%d, user_id=%d, difficulty=%s", flashcardID, userID, difficulty)

	// Serialize reviews of the same card so the scheduling update is never
	// computed from stale state.
	unlock := s.locks.lock(flashcardID)
	defer unlock()

	card, err := s.flashcards.Get(ctx, flashcardID)
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", flashcardID)
	}

	material, err := s.materials.Get(ctx, card.MaterialID)
	if err != nil {
		log.Error("failed to get material: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if material == nil {
		// Should not happen while foreign keys hold.
		return nil, errors.NewNotFoundError("material", card.MaterialID)
	}
	if material.UserID != userID {
		log.Warn("flashcard ownership mismatch: flashcard_id=%d, user_id=%d", flashcardID, userID)
		return nil, errors.NewUnauthorizedError("flashcard")
	}

	now := time.Now().UTC()
	state, nextReview := srs.Schedule(srs.State{
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetitions:  card.Repetitions,
	}, difficulty.Quality(), now)

	card.EaseFactor = state.EaseFactor
	card.IntervalDays = state.IntervalDays
	card.Repetitions = state.Repetitions
	card.NextReview = &nextReview

	log.Debug("applied review: interval=%d days, ease=%.2f, reps=%d", card.IntervalDays, card.EaseFactor, card.Repetitions)

	delta := models.SessionDelta{FlashcardsStudied: 1}
	if difficulty.Correct() {
		delta.FlashcardsCorrect = 1
	}

	// The scheduling update, history row, and aggregate bump commit as a
	// unit: a crash between them must not leave a reviewed card with no
	// history record.
	err = s.atomic.InTx(ctx, func(ctx context.Context) error {
		if err := s.flashcards.UpdateScheduling(ctx, *card); err != nil {
			return err
		}
		if _, err := s.reviews.Insert(ctx, models.FlashcardReview{
			FlashcardID:  card.ID,
			UserID:       userID,
			Difficulty:   string(difficulty),
			EaseFactor:   card.EaseFactor,
			IntervalDays: card.IntervalDays,
			ReviewedAt:   now,
		}); err != nil {
			return err
		}
		_, err := s.sessions.Increment(ctx, userID, models.SessionDay(now), delta)
		return err
	})
	if err != nil {
		log.Error("failed to persist review: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &ReviewResult{Flashcard: *card, NextReview: nextReview}, nil
}

func (s *reviewService) DueFlashcards(ctx context.Context, userID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching due flashcards: user_id=%d", userID)

	cards, err := s.flashcards.Due(ctx, userID, time.Now().UTC(), dueLimit)
	if err != nil {
		log.Error("failed to fetch due flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *reviewService) ReviewHistory(ctx context.Context, userID, flashcardID int64) ([]models.FlashcardReview, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching review history: flashcard_id=%d, user_id=%d", flashcardID, userID)

	card, err := s.flashcards.Get(ctx, flashcardID)
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", flashcardID)
	}

	material, err := s.materials.Get(ctx, card.MaterialID)
	if err != nil {
		log.Error("failed to get material: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if material == nil {
		return nil, errors.NewNotFoundError("material", card.MaterialID)
	}
	if material.UserID != userID {
		return nil, errors.NewUnauthorizedError("flashcard")
	}

	reviews, err := s.reviews.ListByFlashcard(ctx, flashcardID)
	if err != nil {
		log.Error("failed to list reviews: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return reviews, nil
}

// cardLocks hands out one mutex per flashcard id. Entries are never
// reclaimed; the map is bounded by the number of distinct cards reviewed
// over the process lifetime.
type cardLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (c *cardLocks) lock(id int64) func() {
	c.mu.Lock()
	if c.locks == nil {
		c.locks = map[int64]*sync.Mutex{}
	}
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
