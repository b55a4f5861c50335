package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review models.FlashcardReview) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("inserting review: flashcard_id=%d, difficulty=%s", review.FlashcardID, review.Difficulty)

	res, err := conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO flashcard_reviews (flashcard_id, user_id, difficulty, ease_factor, interval_days, reviewed_at)
VALUES (?, ?, ?, ?, ?, ?)
`, review.FlashcardID, review.UserID, review.Difficulty, review.EaseFactor, review.IntervalDays, review.ReviewedAt)
	if err != nil {
		log.Error("failed to insert review: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reviewRepository) ListByFlashcard(ctx context.Context, flashcardID int64) ([]models.FlashcardReview, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("listing reviews: flashcard_id=%d", flashcardID)

	rows, err := conn(ctx, r.db).QueryContext(ctx, `
SELECT id, flashcard_id, user_id, difficulty, ease_factor, interval_days, reviewed_at
FROM flashcard_reviews
WHERE flashcard_id = ?
ORDER BY reviewed_at ASC, id ASC
`, flashcardID)
	if err != nil {
		log.Error("failed to list reviews: %v", err)
		return nil, err
	}
	defer rows.Close()

	var reviews []models.FlashcardReview
	for rows.Next() {
		var rev models.FlashcardReview
		if err := rows.Scan(&rev.ID, &rev.FlashcardID, &rev.UserID, &rev.Difficulty, &rev.EaseFactor, &rev.IntervalDays, &rev.ReviewedAt); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	log.Debug("found %d reviews", len(reviews))
	return reviews, rows.Err()
}

func (r *reviewRepository) DifficultyCounts(ctx context.Context, userID int64) (map[string]int, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("counting reviews by difficulty: user_id=%d", userID)

	query := sqlBuilder.Select("difficulty", "COUNT(*)").
		From("flashcard_reviews").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("difficulty")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build difficulty counts query: %v", err)
		return nil, err
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query difficulty counts: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			log.Error("failed to scan difficulty count row: %v", err)
			return nil, err
		}
		counts[difficulty] = count
	}
	return counts, rows.Err()
}
