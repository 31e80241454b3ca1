package health

import (
	"encoding/json"
	"net/http"

	"github.com/mager/moodring/recommend"
	"go.uber.org/zap"
)

// HealthHandler reports whether the server is up and what it has loaded.
type HealthHandler struct {
	log    *zap.Logger
	engine *recommend.Engine
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

func (*HealthHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.Logger, engine *recommend.Engine) *HealthHandler {
	return &HealthHandler{
		log:    log,
		engine: engine,
	}
}

type Response struct {
	Server bool `json:"server"`
	Songs  int  `json:"songs"`
	Moods  int  `json:"moods"`
}

// Health check
// @Summary Health check
// @Description Server status and loaded dataset size
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Debug("health check")

	resp.Server = true
	resp.Songs = h.engine.SongCount()
	resp.Moods = len(h.engine.Moods())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
