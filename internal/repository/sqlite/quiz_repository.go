package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

type quizRepository struct {
	db *sql.DB
}

// NewQuizRepository creates a new QuizRepository implementation
func NewQuizRepository(db *sql.DB) repository.QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Get(ctx context.Context, id int64) (*models.Quiz, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_repo")
	log.Debug("getting quiz: id=%d", id)

	var q models.Quiz
	var options string
	err := conn(ctx, r.db).QueryRowContext(ctx, `
SELECT id, material_id, question, options, correct_answer, created_at
FROM quizzes
WHERE id = ?
`, id).Scan(&q.ID, &q.MaterialID, &q.Question, &options, &q.CorrectAnswer, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("quiz not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get quiz: %v", err)
		return nil, err
	}
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		log.Error("failed to decode quiz options: %v", err)
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) Insert(ctx context.Context, q models.Quiz) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_repo")
	log.Debug("inserting quiz: material_id=%d", q.MaterialID)

	options, err := json.Marshal(q.Options)
	if err != nil {
		return 0, err
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO quizzes (material_id, question, options, correct_answer)
VALUES (?, ?, ?, ?)
`, q.MaterialID, q.Question, string(options), q.CorrectAnswer)
	if err != nil {
		log.Error("failed to insert quiz: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}
