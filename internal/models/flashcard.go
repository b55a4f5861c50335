package models

import "time"

// Flashcard is the unit of review. The scheduling fields (ease_factor,
// interval_days, repetitions, next_review) are the only mutable state and
// are only ever written by the review flow. NextReview is nil for cards
// that have never been scheduled, which counts as due.
type Flashcard struct {
	ID           int64      `json:"id"`
	MaterialID   int64      `json:"material_id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	EaseFactor   float64    `json:"ease_factor"`
	IntervalDays int        `json:"interval_days"`
	Repetitions  int        `json:"repetitions"`
	NextReview   *time.Time `json:"next_review"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FlashcardReview is an append-only history record. EaseFactor and
// IntervalDays are post-review snapshots of the flashcard state.
type FlashcardReview struct {
	ID           int64     `json:"id"`
	FlashcardID  int64     `json:"flashcard_id"`
	UserID       int64     `json:"user_id"`
	Difficulty   string    `json:"difficulty"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}
