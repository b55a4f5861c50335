package sqlite

import (
	"context"
	"database/sql"

	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Increment(ctx context.Context, userID int64, day string, delta models.SessionDelta) (*models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("incrementing study session: user_id=%d, date=%s", userID, day)

	// Increment-on-conflict keeps concurrent updates additive; a
	// read-then-write here would let parallel reviews clobber each other.
	var s models.StudySession
	err := conn(ctx, r.db).QueryRowContext(ctx, `
INSERT INTO study_sessions (user_id, date, flashcards_studied, flashcards_correct, quizzes_completed, quizzes_correct)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, date) DO UPDATE SET
    flashcards_studied = flashcards_studied + excluded.flashcards_studied,
    flashcards_correct = flashcards_correct + excluded.flashcards_correct,
    quizzes_completed = quizzes_completed + excluded.quizzes_completed,
    quizzes_correct = quizzes_correct + excluded.quizzes_correct
RETURNING id, user_id, date, flashcards_studied, flashcards_correct, quizzes_completed, quizzes_correct, created_at
`, userID, day, delta.FlashcardsStudied, delta.FlashcardsCorrect, delta.QuizzesCompleted, delta.QuizzesCorrect).
		Scan(&s.ID, &s.UserID, &s.Date, &s.FlashcardsStudied, &s.FlashcardsCorrect, &s.QuizzesCompleted, &s.QuizzesCorrect, &s.CreatedAt)
	if err != nil {
		log.Error("failed to increment study session: %v", err)
		return nil, err
	}
	log.Debug("study session updated: id=%d, studied=%d", s.ID, s.FlashcardsStudied)
	return &s, nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID int64) ([]models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing study sessions: user_id=%d", userID)

	rows, err := conn(ctx, r.db).QueryContext(ctx, `
SELECT id, user_id, date, flashcards_studied, flashcards_correct, quizzes_completed, quizzes_correct, created_at
FROM study_sessions
WHERE user_id = ?
ORDER BY date DESC
`, userID)
	if err != nil {
		log.Error("failed to list study sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var s models.StudySession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.FlashcardsStudied, &s.FlashcardsCorrect, &s.QuizzesCompleted, &s.QuizzesCorrect, &s.CreatedAt); err != nil {
			log.Error("failed to scan study session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	log.Debug("found %d study sessions", len(sessions))
	return sessions, rows.Err()
}
