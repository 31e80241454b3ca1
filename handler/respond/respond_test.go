package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/moodring/classifier"
	"github.com/mager/moodring/logger"
	"github.com/mager/moodring/recommend"
)

func TestErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLog    string
	}{
		{
			name:       "validation",
			err:        &recommend.ValidationError{Message: "Mood is required."},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Mood is required.",
			wantLog:    "request rejected",
		},
		{
			name:       "not found",
			err:        &recommend.NotFoundError{Message: "Song 'x' not found."},
			wantStatus: http.StatusNotFound,
			wantBody:   "Song 'x' not found.",
			wantLog:    "request rejected",
		},
		{
			name:       "wrapped prediction error",
			err:        fmt.Errorf("engine: %w", &classifier.PredictionError{Err: errors.New("boom")}),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "engine: Prediction failed: boom",
			wantLog:    "prediction failed",
		},
		{
			name:       "unknown",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal error",
			wantLog:    "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logs := logger.NewTestLogger()
			rr := httptest.NewRecorder()

			Err(rr, log, tt.err)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Error != tt.wantBody {
				t.Errorf("error body = %q, want %q", body.Error, tt.wantBody)
			}
			if logs.FilterMessage(tt.wantLog).Len() != 1 {
				t.Errorf("expected log %q, got %v", tt.wantLog, logs.All())
			}
		})
	}
}
