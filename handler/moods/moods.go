package moods

import (
	"net/http"

	"github.com/mager/moodring/handler/respond"
	"github.com/mager/moodring/recommend"
	"go.uber.org/zap"
)

// MoodsHandler lists the moods songs can be recommended for.
type MoodsHandler struct {
	log    *zap.SugaredLogger
	engine *recommend.Engine
}

func (*MoodsHandler) Pattern() string {
	return "/api/moods"
}

func (*MoodsHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewMoodsHandler builds a new MoodsHandler.
func NewMoodsHandler(log *zap.SugaredLogger, engine *recommend.Engine) *MoodsHandler {
	return &MoodsHandler{
		log:    log,
		engine: engine,
	}
}

type Response struct {
	AvailableMoods []string `json:"available_moods"`
}

// Get available moods
// @Summary Get available moods
// @Description Distinct moods in the dataset, sorted
// @Tags Moods
// @Produce json
// @Success 200 {object} Response
// @Router /api/moods [get]
func (h *MoodsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{AvailableMoods: h.engine.Moods()}

	if err := respond.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
