package adaptor

import (
	"net/http"

	"movie-reviews/internal/view"

	"go.uber.org/zap"
)

// PageHandler serves the fallback pages.
type PageHandler struct {
	base
}

func NewPageHandler(b base, log *zap.Logger) *PageHandler {
	return &PageHandler{base: b.with(log.With(zap.String("handler", "page")))}
}

// NotFound handles every unmatched route.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("Route not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	h.notFound(w, r)
}

// InternalError renders the 500 page; the recover middleware calls it after
// a handler panicked.
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusInternalServerError, "error", view.Title("Error"), view.ErrorData{
		Message: "Internal server error",
	})
}
