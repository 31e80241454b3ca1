// Package respond writes JSON responses and maps engine errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mager/moodring/classifier"
	"github.com/mager/moodring/recommend"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) error {
	return JSON(w, status, ErrorResponse{Error: msg})
}

// StatusFor returns the HTTP status for an engine error. Prediction
// failures and anything unrecognized are server errors.
func StatusFor(err error) int {
	var (
		verr *recommend.ValidationError
		nerr *recommend.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &nerr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Err writes err as a JSON error body. Errors outside the engine taxonomy are
// logged and hidden behind a generic message.
func Err(w http.ResponseWriter, log *zap.SugaredLogger, err error) {
	status := StatusFor(err)

	var (
		verr *recommend.ValidationError
		nerr *recommend.NotFoundError
		perr *classifier.PredictionError
	)
	msg := err.Error()
	switch {
	case errors.As(err, &verr), errors.As(err, &nerr):
		log.Infow("request rejected", "status", status, "error", msg)
	case errors.As(err, &perr):
		log.Errorw("prediction failed", "error", msg)
	default:
		log.Errorw("unexpected error", "error", msg)
		msg = "internal error"
	}

	if err := Error(w, status, msg); err != nil {
		log.Errorw("Failed to encode error response", "error", err)
	}
}
