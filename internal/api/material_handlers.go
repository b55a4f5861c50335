package api

import (
	"net/http"

	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/services"
)

type cardPayload struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type quizPayload struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

type createMaterialRequest struct {
	Title      string        `json:"title" validate:"required,max=200"`
	Flashcards []cardPayload `json:"flashcards" validate:"dive"`
	Quizzes    []quizPayload `json:"quizzes" validate:"dive"`
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	user := userFromContext(r.Context())

	var req createMaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	cards := make([]services.NewCard, 0, len(req.Flashcards))
	for _, c := range req.Flashcards {
		cards = append(cards, services.NewCard{Question: c.Question, Answer: c.Answer})
	}
	quizzes := make([]services.NewQuiz, 0, len(req.Quizzes))
	for _, q := range req.Quizzes {
		quizzes = append(quizzes, services.NewQuiz{Question: q.Question, Options: q.Options, CorrectAnswer: q.CorrectAnswer})
	}

	material, err := s.MaterialService.CreateMaterial(r.Context(), user.ID, req.Title, cards, quizzes)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("material created: id=%d, title=%s", material.ID, material.Title)
	respondJSON(w, http.StatusCreated, material)
}

func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	materials, err := s.MaterialService.ListMaterials(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if materials == nil {
		materials = []models.Material{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"materials": materials})
}
