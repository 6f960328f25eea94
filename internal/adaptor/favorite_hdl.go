package adaptor

import (
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type FavoriteHandler struct {
	base
	service usecase.FavoriteService
}

func NewFavoriteHandler(service usecase.FavoriteService, b base, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		base:    b.with(log.With(zap.String("handler", "favorite"))),
		service: service,
	}
}

// GetFavorites handles GET /favorites
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListFavorites(r.Context(), currentUser(r))
	if err != nil {
		h.handleServiceError(w, r, err, "list favorites", "Failed to load favorites")
		return
	}

	h.page(w, r, http.StatusOK, "favorites", view.Title("My Favorites"), view.NewFavoritesData(list))
}

// RemoveFavorite handles POST /favorites/{id}/delete
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}
	if !confirmed(r) {
		h.confirm(w, r, "Remove Favorite", "Remove this movie from favorites?", "/favorites")
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "remove favorite", "Failed to remove favorite")
		return
	}

	h.toasts.Info("Removed from favorites")
	utils.Redirect(w, r, "/favorites")
}
