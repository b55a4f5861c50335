package services

import (
	"context"

	"github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

// NewCard is the content for one flashcard created with a material.
type NewCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewQuiz is the content for one quiz created with a material.
type NewQuiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// MaterialService handles material creation and listing. Content is
// immutable after creation; there is no update or delete path.
type MaterialService interface {
	CreateMaterial(ctx context.Context, userID int64, title string, cards []NewCard, quizzes []NewQuiz) (*models.Material, error)
	ListMaterials(ctx context.Context, userID int64) ([]models.Material, error)
}

type materialService struct {
	materials  repository.MaterialRepository
	flashcards repository.FlashcardRepository
	quizzes    repository.QuizRepository
	atomic     repository.Atomic
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materials repository.MaterialRepository,
	flashcards repository.FlashcardRepository,
	quizzes repository.QuizRepository,
	atomic repository.Atomic,
) MaterialService {
	return &materialService{
		materials:  materials,
		flashcards: flashcards,
		quizzes:    quizzes,
		atomic:     atomic,
	}
}

func (s *materialService) CreateMaterial(ctx context.Context, userID int64, title string, cards []NewCard, quizzes []NewQuiz) (*models.Material, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating material: user_id=%d, cards=%d, quizzes=%d", userID, len(cards), len(quizzes))

	var material models.Material
	err := s.atomic.InTx(ctx, func(ctx context.Context) error {
		id, err := s.materials.Insert(ctx, models.Material{UserID: userID, Title: title})
		if err != nil {
			return err
		}
		for _, c := range cards {
			// New cards start unscheduled (next_review null), which sorts
			// ahead of everything in the due queue.
			if _, err := s.flashcards.Insert(ctx, models.Flashcard{
				MaterialID: id,
				Question:   c.Question,
				Answer:     c.Answer,
				EaseFactor: 2.5,
			}); err != nil {
				return err
			}
		}
		for _, q := range quizzes {
			if _, err := s.quizzes.Insert(ctx, models.Quiz{
				MaterialID:    id,
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			}); err != nil {
				return err
			}
		}
		material = models.Material{ID: id, UserID: userID, Title: title}
		return nil
	})
	if err != nil {
		log.Error("failed to create material: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("material created: id=%d", material.ID)
	return &material, nil
}

func (s *materialService) ListMaterials(ctx context.Context, userID int64) ([]models.Material, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing materials: user_id=%d", userID)

	materials, err := s.materials.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list materials: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return materials, nil
}
