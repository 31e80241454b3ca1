package home

import (
	"net/http"

	"github.com/mager/moodring/handler/respond"
	"go.uber.org/zap"
)

// HomeHandler describes the API.
type HomeHandler struct {
	log *zap.SugaredLogger
}

func (*HomeHandler) Pattern() string {
	return "/"
}

func (*HomeHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewHomeHandler builds a new HomeHandler.
func NewHomeHandler(log *zap.SugaredLogger) *HomeHandler {
	return &HomeHandler{
		log: log,
	}
}

type Response struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Describe the API
// @Summary Describe the API
// @Description Service status and the list of endpoints
// @Produce json
// @Success 200 {object} Response
// @Router / [get]
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:  "running",
		Message: "Mood Based Song Recommendation API",
		Endpoints: map[string]string{
			"GET /api/moods":           "Get available moods",
			"POST /api/recommend/mood": "Recommend songs by mood",
			"POST /api/recommend/song": "Recommend songs by song name",
		},
	}

	if err := respond.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
