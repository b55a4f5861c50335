package api

import (
	"net/http"

	"github.com/studyflash/studyflash/internal/logger"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

// handleCreateUser registers (or re-resolves) a user by username. Real
// authentication happens upstream; this exists so the service is usable
// standalone.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, err := s.Users.Insert(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("user upserted: id=%d, username=%s", user.ID, user.Username)
	respondJSON(w, http.StatusCreated, user)
}
