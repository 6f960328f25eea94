package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFavorite(r chi.Router, favoriteHandler *adaptor.FavoriteHandler) {
	r.Get("/favorites", favoriteHandler.GetFavorites)
	r.Post("/favorites/{id}/delete", favoriteHandler.RemoveFavorite)
}
