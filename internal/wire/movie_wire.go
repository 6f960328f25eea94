package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)       // GET /movies?q=&genre=
		r.Post("/", movieHandler.CreateMovie)    // POST /movies
		r.Get("/add", movieHandler.AddMovieForm) // GET /movies/add
		r.Post("/validate", movieHandler.ValidateMovie)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", movieHandler.GetMovieByID)
			r.Get("/edit", movieHandler.EditMovieForm)
			r.Post("/edit", movieHandler.UpdateMovie) // PATCH on the store
			r.Post("/delete", movieHandler.DeleteMovie)
			r.Post("/favorite", movieHandler.ToggleFavorite)
		})
	})
}
