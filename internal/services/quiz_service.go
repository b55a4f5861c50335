package services

import (
	"context"
	"time"

	"github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

// QuizResult is the outcome of a graded quiz answer.
type QuizResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizService grades quiz answers and records them in the daily aggregate.
type QuizService interface {
	AnswerQuiz(ctx context.Context, userID, quizID int64, answer string) (*QuizResult, error)
}

type quizService struct {
	quizzes   repository.QuizRepository
	materials repository.MaterialRepository
	sessions  repository.SessionRepository
}

// NewQuizService creates a new QuizService
func NewQuizService(
	quizzes repository.QuizRepository,
	materials repository.MaterialRepository,
	sessions repository.SessionRepository,
) QuizService {
	return &quizService{
		quizzes:   quizzes,
		materials: materials,
		sessions:  sessions,
	}
}

func (s *quizService) AnswerQuiz(ctx context.Context, userID, quizID int64, answer string) (*QuizResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("answering quiz: quiz_id=%d, user_id=%d", quizID, userID)

	quiz, err := s.quizzes.Get(ctx, quizID)
	if err != nil {
		log.Error("failed to get quiz: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if quiz == nil {
		return nil, errors.NewNotFoundError("quiz", quizID)
	}

	material, err := s.materials.Get(ctx, quiz.MaterialID)
	if err != nil {
		log.Error("failed to get material: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if material == nil {
		return nil, errors.NewNotFoundError("material", quiz.MaterialID)
	}
	if material.UserID != userID {
		return nil, errors.NewUnauthorizedError("quiz")
	}

	correct := answer == quiz.CorrectAnswer

	delta := models.SessionDelta{QuizzesCompleted: 1}
	if correct {
		delta.QuizzesCorrect = 1
	}
	if _, err := s.sessions.Increment(ctx, userID, models.SessionDay(time.Now().UTC()), delta); err != nil {
		log.Error("failed to update study session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &QuizResult{Correct: correct, CorrectAnswer: quiz.CorrectAnswer}, nil
}
