package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/srs"
)

type reviewRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=again hard good easy"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	user := userFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid flashcard ID"))
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	// The oneof rule already constrains the label; parse keeps the typed
	// difficulty as the only value crossing the service boundary.
	difficulty, err := srs.ParseDifficulty(req.Difficulty)
	if err != nil {
		handleError(w, r, errors.NewValidationError("difficulty", "must be one of again, hard, good, easy"))
		return
	}

	log.Debug("review request: flashcard_id=%d, difficulty=%s", id, difficulty)

	result, err := s.ReviewService.SubmitReview(r.Context(), user.ID, id, difficulty)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("flashcard reviewed: flashcard_id=%d, next_review=%s", id, result.NextReview.Format("2006-01-02"))
	respondJSON(w, http.StatusOK, map[string]any{
		"flashcard":   result.Flashcard,
		"next_review": result.NextReview,
	})
}

func (s *Server) handleDueFlashcards(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	cards, err := s.ReviewService.DueFlashcards(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"flashcards": cards,
		"total_due":  len(cards),
	})
}

func (s *Server) handleReviewHistory(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid flashcard ID"))
		return
	}

	reviews, err := s.ReviewService.ReviewHistory(r.Context(), user.ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []models.FlashcardReview{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}
