package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studyflash/studyflash/internal/errors"
)

type quizAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid quiz ID"))
		return
	}

	var req quizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.QuizService.AnswerQuiz(r.Context(), user.ID, id, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
