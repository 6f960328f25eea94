package adaptor

import (
	"net/http"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const homeSectionSize = 3

type HomeHandler struct {
	base
	movies  usecase.MovieService
	reviews usecase.ReviewService
}

func NewHomeHandler(movies usecase.MovieService, reviews usecase.ReviewService, b base, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		base:    b.with(log.With(zap.String("handler", "home"))),
		movies:  movies,
		reviews: reviews,
	}
}

// Home handles GET /. Either section may fail on its own.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	var (
		movies  []entity.Movie
		reviews []entity.Review
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		var err error
		if movies, err = h.movies.Featured(r.Context(), homeSectionSize); err != nil {
			h.log.Warn("Failed to load featured movies", zap.Error(err))
			h.toasts.Error("Failed to load movies")
		}
	})
	wg.Go(func() {
		var err error
		if reviews, err = h.reviews.Recent(r.Context(), homeSectionSize); err != nil {
			h.log.Warn("Failed to load recent reviews", zap.Error(err))
			h.toasts.Error("Failed to load reviews")
		}
	})
	wg.Wait()

	h.page(w, r, http.StatusOK, "home", view.Title("Home"), view.HomeData{
		Movies:  view.MovieCards(movies),
		Reviews: reviews,
	})
}
