package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Post("/api/users", s.handleCreateUser)

	r.Group(func(r chi.Router) {
		r.Use(s.userMiddleware)

		r.Get("/api/flashcards/due", s.handleDueFlashcards)
		r.Post("/api/flashcards/{id}/review", s.handleSubmitReview)
		r.Get("/api/flashcards/{id}/reviews", s.handleReviewHistory)

		r.Post("/api/materials", s.handleCreateMaterial)
		r.Get("/api/materials", s.handleListMaterials)

		r.Post("/api/quizzes/{id}/answer", s.handleAnswerQuiz)

		r.Get("/api/stats", s.handleStats)
	})

	return r
}
