package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type FavoriteRepository interface {
	// FindByUserID returns the user's favorites with the movie expanded.
	FindByUserID(ctx context.Context, userID int) ([]entity.Favorite, error)
	// FindByUserAndMovie is the membership probe; the store does not enforce
	// uniqueness so more than one row may come back.
	FindByUserAndMovie(ctx context.Context, userID, movieID int) ([]entity.Favorite, error)
	Create(ctx context.Context, payload *request.FavoritePayload) (*entity.Favorite, error)
	Delete(ctx context.Context, id int) error
}

type favoriteRepository struct {
	db  database.StoreIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.StoreIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID int) ([]entity.Favorite, error) {
	query := expand(url.Values{"userId": {strconv.Itoa(userID)}}, "movie")

	var favorites []entity.Favorite
	if err := r.db.List(ctx, collectionFavorites, query, &favorites); err != nil {
		r.log.Error("Failed to find favorites by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find favorites for user %d: %w", userID, err)
	}

	return favorites, nil
}

func (r *favoriteRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int) ([]entity.Favorite, error) {
	query := url.Values{
		"userId":  {strconv.Itoa(userID)},
		"movieId": {strconv.Itoa(movieID)},
	}

	var favorites []entity.Favorite
	if err := r.db.List(ctx, collectionFavorites, query, &favorites); err != nil {
		r.log.Error("Failed to probe favorite",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("find favorite for user %d and movie %d: %w", userID, movieID, err)
	}

	return favorites, nil
}

func (r *favoriteRepository) Create(ctx context.Context, payload *request.FavoritePayload) (*entity.Favorite, error) {
	var created entity.Favorite
	if err := r.db.Create(ctx, collectionFavorites, payload, &created); err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.Int("user_id", payload.UserID),
			zap.Int("movie_id", payload.MovieID),
		)
		return nil, fmt.Errorf("create favorite for movie %d: %w", payload.MovieID, err)
	}

	return &created, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, collectionFavorites, id); err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.Int("favorite_id", id),
		)
		return fmt.Errorf("delete favorite %d: %w", id, err)
	}

	return nil
}
