package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, commentHandler *adaptor.CommentHandler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.GetReviews)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", reviewHandler.GetReviewByID)
			r.Post("/helpful", reviewHandler.MarkHelpful)

			// Comments sub-form
			r.Post("/comments", commentHandler.AddComment)
			r.Post("/comments/{commentID}/delete", commentHandler.DeleteComment)
		})
	})
}
