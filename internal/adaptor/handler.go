package adaptor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"movie-reviews/internal/form"
	"movie-reviews/internal/notify"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Home     *HomeHandler
	Movie    *MovieHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	Favorite *FavoriteHandler
	Notify   *NotifyHandler
	Page     *PageHandler
}

func NewHandler(
	service *usecase.Service,
	render *view.Renderer,
	center *notify.Center,
	hub *notify.Hub,
	log *zap.Logger,
) *Handler {
	b := base{render: render, toasts: center, now: time.Now}
	return &Handler{
		Home:     NewHomeHandler(service.Movie, service.Review, b, log),
		Movie:    NewMovieHandler(service.Movie, service.Favorite, b, log),
		Review:   NewReviewHandler(service.Review, b, log),
		Comment:  NewCommentHandler(service.Comment, service.Review, b, log),
		Favorite: NewFavoriteHandler(service.Favorite, b, log),
		Notify:   NewNotifyHandler(center, hub, log),
		Page:     NewPageHandler(b, log),
	}
}

// base carries what every page handler needs to answer a request: the
// renderer, the toast center and a clock for the form rules.
type base struct {
	render *view.Renderer
	toasts *notify.Center
	now    func() time.Time
	log    *zap.Logger
}

func (b base) with(log *zap.Logger) base {
	b.log = log
	return b
}

func (b base) env() form.Env {
	return form.EnvAt(b.now())
}

func (b base) page(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	b.render.Page(w, status, name, view.Page{
		Title:  title,
		Nav:    view.Navigation(r.URL.Path),
		Toasts: b.toasts.Active(),
		Data:   data,
	})
}

// partial answers an HTMX request. htmx does not swap non-2xx answers, so
// the status is always 200.
func (b base) partial(w http.ResponseWriter, name string, data any) {
	b.render.Partial(w, http.StatusOK, name, data)
}

func (b base) notFound(w http.ResponseWriter, r *http.Request) {
	b.page(w, r, http.StatusNotFound, "not_found", "404 - Page Not Found", nil)
}

// confirm renders the confirmation page for a destructive POST that did not
// carry confirm=yes.
func (b base) confirm(w http.ResponseWriter, r *http.Request, title, message, cancelHref string) {
	b.page(w, r, http.StatusOK, "confirm", view.Title(title), view.ConfirmData{
		Message:    message,
		Action:     r.URL.Path,
		CancelHref: cancelHref,
	})
}

func confirmed(r *http.Request) bool {
	return r.PostFormValue("confirm") == "yes"
}

func pathID(r *http.Request, key string) (int, bool) {
	return utils.ParseID(chi.URLParam(r, key))
}

// handleServiceError maps a store failure to a view: 404 for missing
// records, a 502 page with an error toast for everything else.
func (b base) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation, toast string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		b.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		b.notFound(w, r)

	case errors.Is(err, context.Canceled):
		b.log.Debug(operation+" cancelled by client",
			zap.String("operation", operation))

	default:
		b.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		b.toasts.Error(toast)
		b.page(w, r, http.StatusBadGateway, "error", view.Title("Error"), view.ErrorData{Message: toast})
	}
}

// currentUser is set by middleware.CurrentUser on every request.
func currentUser(r *http.Request) int {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
