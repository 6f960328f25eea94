package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]entity.Movie, error)
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	Create(ctx context.Context, payload *request.MoviePayload) (*entity.Movie, error)
	Update(ctx context.Context, id int, payload *request.MoviePayload) (*entity.Movie, error)
	Delete(ctx context.Context, id int) error
}

type movieRepository struct {
	db  database.StoreIface
	log *zap.Logger
}

func NewMovieRepository(db database.StoreIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := r.db.List(ctx, collectionMovies, nil, &movies); err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))
	return movies, nil
}

// FindByID returns nil, nil when the store has no such movie.
func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.db.Get(ctx, collectionMovies, id, nil, &movie)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, payload *request.MoviePayload) (*entity.Movie, error) {
	var created entity.Movie
	if err := r.db.Create(ctx, collectionMovies, payload, &created); err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", payload.Title),
		)
		return nil, fmt.Errorf("create movie %q: %w", payload.Title, err)
	}

	r.log.Info("Movie created",
		zap.Int("movie_id", created.ID),
		zap.String("title", created.Title),
	)
	return &created, nil
}

func (r *movieRepository) Update(ctx context.Context, id int, payload *request.MoviePayload) (*entity.Movie, error) {
	var updated entity.Movie
	if err := r.db.Patch(ctx, collectionMovies, id, payload, &updated); err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}

	return &updated, nil
}

func (r *movieRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, collectionMovies, id); err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	r.log.Info("Movie deleted", zap.Int("movie_id", id))
	return nil
}
