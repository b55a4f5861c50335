package repository

import (
	"context"
	"time"

	"github.com/studyflash/studyflash/internal/models"
)

// FlashcardRepository handles flashcard data access. Lookups return
// (nil, nil) when the row does not exist.
type FlashcardRepository interface {
	Get(ctx context.Context, id int64) (*models.Flashcard, error)
	Insert(ctx context.Context, flashcard models.Flashcard) (int64, error)
	// UpdateScheduling writes only the scheduling fields of the card.
	UpdateScheduling(ctx context.Context, flashcard models.Flashcard) error
	// Due returns the user's flashcards with next_review at or before now,
	// never-scheduled cards first, capped at limit.
	Due(ctx context.Context, userID int64, now time.Time, limit int) ([]models.Flashcard, error)
}

// MaterialRepository handles material data access
type MaterialRepository interface {
	Get(ctx context.Context, id int64) (*models.Material, error)
	Insert(ctx context.Context, material models.Material) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Material, error)
}

// ReviewRepository handles the append-only review history
type ReviewRepository interface {
	Insert(ctx context.Context, review models.FlashcardReview) (int64, error)
	ListByFlashcard(ctx context.Context, flashcardID int64) ([]models.FlashcardReview, error)
	DifficultyCounts(ctx context.Context, userID int64) (map[string]int, error)
}

// SessionRepository handles daily study-session aggregates
type SessionRepository interface {
	// Increment atomically adds the delta counters to the (user, day) row,
	// creating it with zeroed counters first when absent.
	Increment(ctx context.Context, userID int64, day string, delta models.SessionDelta) (*models.StudySession, error)
	ListByUser(ctx context.Context, userID int64) ([]models.StudySession, error)
}

// UserRepository handles user data access
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	Insert(ctx context.Context, username string) (*models.User, error)
}

// QuizRepository handles quiz data access
type QuizRepository interface {
	Get(ctx context.Context, id int64) (*models.Quiz, error)
	Insert(ctx context.Context, quiz models.Quiz) (int64, error)
}

// Atomic runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction.
type Atomic interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
