package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// FindAll returns every review with its movie and user expanded.
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByID(ctx context.Context, id int) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int) ([]entity.Review, error)
	UpdateHelpful(ctx context.Context, id, helpful int) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.StoreIface
	log *zap.Logger
}

func NewReviewRepository(db database.StoreIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func expand(query url.Values, relations ...string) url.Values {
	if query == nil {
		query = url.Values{}
	}
	for _, rel := range relations {
		query.Add("_expand", rel)
	}
	return query
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.db.List(ctx, collectionReviews, expand(nil, "movie", "user"), &reviews); err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	var review entity.Review
	err := r.db.Get(ctx, collectionReviews, id, expand(nil, "movie", "user"), &review)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int("review_id", id),
		)
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int) ([]entity.Review, error) {
	query := expand(url.Values{"movieId": {strconv.Itoa(movieID)}}, "user")

	var reviews []entity.Review
	if err := r.db.List(ctx, collectionReviews, query, &reviews); err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie %d: %w", movieID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateHelpful(ctx context.Context, id, helpful int) (*entity.Review, error) {
	var updated entity.Review
	err := r.db.Patch(ctx, collectionReviews, id, &request.HelpfulPatch{Helpful: helpful}, &updated)
	if err != nil {
		r.log.Error("Failed to update helpful count",
			zap.Error(err),
			zap.Int("review_id", id),
			zap.Int("helpful", helpful),
		)
		return nil, fmt.Errorf("update review %d helpful: %w", id, err)
	}

	return &updated, nil
}
