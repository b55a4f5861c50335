package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/studyflash/studyflash/internal/db"
	apperrors "github.com/studyflash/studyflash/internal/errors"
	"github.com/studyflash/studyflash/internal/repository"
	"github.com/studyflash/studyflash/internal/services"
)

type Server struct {
	DB              *db.DB
	Users           repository.UserRepository
	ReviewService   services.ReviewService
	MaterialService services.MaterialService
	QuizService     services.QuizService
	StatsService    services.StatsService
}

var validate = validator.New()

// decodeJSON decodes and validates a JSON request body.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return apperrors.NewValidationError(errs[0].Field(), "failed on '"+errs[0].Tag()+"' rule")
		}
		return apperrors.NewBadRequestError("invalid request body")
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
