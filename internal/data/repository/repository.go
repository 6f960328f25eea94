package repository

import (
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

// Collection names exposed by the external store.
const (
	collectionMovies    = "movies"
	collectionReviews   = "reviews"
	collectionFavorites = "favorites"
	collectionComments  = "comments"
)

type Repository struct {
	Movie    MovieRepository
	Review   ReviewRepository
	Favorite FavoriteRepository
	Comment  CommentRepository
}

func NewRepository(db database.StoreIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
		Comment:  NewCommentRepository(db, log),
	}
}
