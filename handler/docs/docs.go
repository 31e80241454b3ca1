package docs

import (
	"net/http"

	_ "github.com/mager/moodring/docs"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// DocsHandler serves the generated OpenAPI document.
type DocsHandler struct {
	log *zap.SugaredLogger
}

func (*DocsHandler) Pattern() string {
	return "/swagger/doc.json"
}

func (*DocsHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewDocsHandler builds a new DocsHandler.
func NewDocsHandler(log *zap.SugaredLogger) *DocsHandler {
	return &DocsHandler{
		log: log,
	}
}

func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.log.Errorw("Failed to read swagger doc", "error", err)
		http.Error(w, `{"error":"docs unavailable"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
