package usecase

import (
	"time"

	"movie-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Review   ReviewService
	Favorite FavoriteService
	Comment  CommentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Review:   NewReviewService(repo, log),
		Favorite: NewFavoriteService(repo.Favorite, log),
		Comment:  NewCommentService(repo.Comment, log),
	}
}

// clock is swapped in tests that need fixed timestamps.
var clock = time.Now
