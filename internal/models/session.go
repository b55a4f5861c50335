package models

import "time"

// StudySession accumulates per-user activity counters for one calendar day.
// There is exactly one row per (user_id, date); all writes go through an
// atomic increment so concurrent activity sums instead of clobbering.
type StudySession struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Date              string    `json:"date"` // YYYY-MM-DD, UTC
	FlashcardsStudied int       `json:"flashcards_studied"`
	FlashcardsCorrect int       `json:"flashcards_correct"`
	QuizzesCompleted  int       `json:"quizzes_completed"`
	QuizzesCorrect    int       `json:"quizzes_correct"`
	CreatedAt         time.Time `json:"created_at"`
}

// SessionDelta is a set of counter increments applied to a day's session.
type SessionDelta struct {
	FlashcardsStudied int
	FlashcardsCorrect int
	QuizzesCompleted  int
	QuizzesCorrect    int
}

// SessionDay normalizes a timestamp to the UTC calendar day used as the
// study_sessions key.
func SessionDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
