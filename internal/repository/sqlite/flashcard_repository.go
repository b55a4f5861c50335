package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func scanFlashcard(scan func(dest ...any) error) (*models.Flashcard, error) {
	var f models.Flashcard
	var nextReview sql.NullTime
	if err := scan(&f.ID, &f.MaterialID, &f.Question, &f.Answer, &f.EaseFactor, &f.IntervalDays, &f.Repetitions, &nextReview, &f.CreatedAt); err != nil {
		return nil, err
	}
	if nextReview.Valid {
		t := nextReview.Time
		f.NextReview = &t
	}
	return &f, nil
}

func (r *flashcardRepository) Get(ctx context.Context, id int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("getting flashcard: id=%d", id)

	row := conn(ctx, r.db).QueryRowContext(ctx, `
SELECT id, material_id, question, answer, ease_factor, interval_days, repetitions, next_review, created_at
FROM flashcards
WHERE id = ?
`, id)
	f, err := scanFlashcard(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return f, nil
}

func (r *flashcardRepository) Insert(ctx context.Context, f models.Flashcard) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting flashcard: material_id=%d", f.MaterialID)

	res, err := conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO flashcards (material_id, question, answer, ease_factor, interval_days, repetitions, next_review)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, f.MaterialID, f.Question, f.Answer, f.EaseFactor, f.IntervalDays, f.Repetitions, nullableTime(f.NextReview))
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return 0, err
	}
	log.Debug("flashcard inserted: id=%d", id)
	return id, nil
}

func (r *flashcardRepository) UpdateScheduling(ctx context.Context, f models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating flashcard scheduling: id=%d, interval=%d, ease=%.2f, reps=%d", f.ID, f.IntervalDays, f.EaseFactor, f.Repetitions)

	_, err := conn(ctx, r.db).ExecContext(ctx, `
UPDATE flashcards
SET ease_factor = ?, interval_days = ?, repetitions = ?, next_review = ?
WHERE id = ?
`, f.EaseFactor, f.IntervalDays, f.Repetitions, nullableTime(f.NextReview), f.ID)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) Due(ctx context.Context, userID int64, now time.Time, limit int) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("fetching due flashcards: user_id=%d, limit=%d", userID, limit)

	// Explicit null-first ordering: never-scheduled cards are the most
	// urgent, and engine null-ordering defaults are not portable.
	query := sqlBuilder.Select(
		"f.id", "f.material_id", "f.question", "f.answer",
		"f.ease_factor", "f.interval_days", "f.repetitions", "f.next_review", "f.created_at",
	).
		From("flashcards f").
		Join("materials m ON m.id = f.material_id").
		Where(squirrel.Eq{"m.user_id": userID}).
		Where(squirrel.Or{
			squirrel.Eq{"f.next_review": nil},
			squirrel.LtOrEq{"f.next_review": now},
		}).
		OrderBy("f.next_review IS NOT NULL", "f.next_review ASC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build due query: %v", err)
		return nil, err
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query due flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		f, err := scanFlashcard(rows.Scan)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, *f)
	}
	log.Debug("found %d due flashcards", len(cards))
	return cards, rows.Err()
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
