package recommend

import (
	"net/http"

	"github.com/mager/moodring/handler/respond"
	"github.com/mager/moodring/recommend"
	"go.uber.org/zap"
)

// MoodHandler recommends songs for a requested mood.
type MoodHandler struct {
	log    *zap.SugaredLogger
	engine *recommend.Engine
}

func (*MoodHandler) Pattern() string {
	return "/api/recommend/mood"
}

func (*MoodHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewMoodHandler builds a new MoodHandler.
func NewMoodHandler(log *zap.SugaredLogger, engine *recommend.Engine) *MoodHandler {
	return &MoodHandler{
		log:    log,
		engine: engine,
	}
}

type MoodRequest struct {
	Mood string `json:"mood"`
}

type MoodResponse struct {
	Mood  string   `json:"mood"`
	Songs []string `json:"songs"`
}

// Recommend songs by mood
// @Summary Recommend songs by mood
// @Description Sample 5 to 8 songs labelled with the requested mood
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body MoodRequest true "Mood"
// @Success 200 {object} MoodResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/recommend/mood [post]
func (h *MoodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req MoodRequest
	decodeBody(w, r, &req)

	rec, err := h.engine.RecommendByMood(r.Context(), req.Mood)
	if err != nil {
		respond.Err(w, h.log, err)
		return
	}

	h.log.Infow("recommend by mood", "mood", rec.Mood, "songs", len(rec.Songs))

	resp := MoodResponse{
		Mood:  rec.Mood,
		Songs: rec.Songs,
	}
	if err := respond.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}

// SongHandler recommends songs that share the predicted mood of a known song.
type SongHandler struct {
	log    *zap.SugaredLogger
	engine *recommend.Engine
}

func (*SongHandler) Pattern() string {
	return "/api/recommend/song"
}

func (*SongHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewSongHandler builds a new SongHandler.
func NewSongHandler(log *zap.SugaredLogger, engine *recommend.Engine) *SongHandler {
	return &SongHandler{
		log:    log,
		engine: engine,
	}
}

type SongRequest struct {
	Song string `json:"song"`
}

type SongResponse struct {
	SongInput       string   `json:"song_input"`
	PredictedMood   string   `json:"predicted_mood"`
	Recommendations []string `json:"recommendations"`
}

// Recommend songs by song name
// @Summary Recommend songs by song name
// @Description Predict the mood of a dataset song from its audio features and sample other songs with that mood
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body SongRequest true "Song"
// @Success 200 {object} SongResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/recommend/song [post]
func (h *SongHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SongRequest
	decodeBody(w, r, &req)

	rec, err := h.engine.RecommendBySong(r.Context(), req.Song)
	if err != nil {
		respond.Err(w, h.log, err)
		return
	}

	h.log.Infow("recommend by song",
		"song", rec.SongInput,
		"predicted_mood", rec.PredictedMood,
		"recommendations", len(rec.Recommendations),
	)

	resp := SongResponse{
		SongInput:       rec.SongInput,
		PredictedMood:   rec.PredictedMood,
		Recommendations: rec.Recommendations,
	}
	if err := respond.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
