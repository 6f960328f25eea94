package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/form"
	"movie-reviews/internal/state"
	"movie-reviews/pkg/database"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Slices of the movie detail page that load independently.
const (
	SliceMovie      = "movie"
	SliceReviews    = "reviews"
	SliceMembership = "favorite"
)

type MovieService interface {
	ListMovies(ctx context.Context, filter request.MovieFilter) (state.MovieList, error)
	Featured(ctx context.Context, n int) ([]entity.Movie, error)
	GetMovie(ctx context.Context, id int) (*entity.Movie, error)
	LoadDetail(ctx context.Context, id, userID int) (state.MovieDetail, error)
	// SubmitMovie submits a replayed movie form: create when id is 0,
	// otherwise update. The returned state is Rejected (validation or store
	// failure) or Submitted.
	SubmitMovie(ctx context.Context, st form.State, env form.Env, id int) form.State
	DeleteMovie(ctx context.Context, id int) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter request.MovieFilter) (state.MovieList, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return state.NewMovieList(), fmt.Errorf("list movies: %w", err)
	}

	list := state.ReduceMovieList(state.NewMovieList(), state.MoviesLoaded{Movies: movies})
	list = state.ReduceMovieList(list, state.QueryChanged{Query: filter.Query})
	list = state.ReduceMovieList(list, state.GenreChanged{Genre: filter.Genre})

	s.log.Debug("Movies filtered",
		zap.String("query", filter.Query),
		zap.String("genre", list.Filter.Genre),
		zap.Int("total", len(list.Source)),
		zap.Int("visible", len(list.Visible)),
	)
	return list, nil
}

// Featured returns the first n movies in store order.
func (s *movieService) Featured(ctx context.Context, n int) ([]entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("featured movies: %w", err)
	}
	if len(movies) > n {
		movies = movies[:n]
	}
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, id int) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, database.ErrNotFound)
	}
	return movie, nil
}

// LoadDetail fetches the movie, its reviews and the favorite probe
// concurrently. Only a failed movie fetch fails the whole page; the other
// slices are reported through MovieDetail.Failures.
func (s *movieService) LoadDetail(ctx context.Context, id, userID int) (state.MovieDetail, error) {
	var (
		events   [3]state.MovieEvent
		movieErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		movie, err := s.GetMovie(ctx, id)
		if err != nil {
			movieErr = err
			events[0] = state.LoadFailed{Slice: SliceMovie, Err: err}
			return
		}
		events[0] = state.MovieLoaded{Movie: movie}
	})
	wg.Go(func() {
		reviews, err := s.repo.Review.FindByMovieID(ctx, id)
		if err != nil {
			events[1] = state.LoadFailed{Slice: SliceReviews, Err: err}
			return
		}
		events[1] = state.ReviewsLoaded{Reviews: reviews}
	})
	wg.Go(func() {
		favorites, err := s.repo.Favorite.FindByUserAndMovie(ctx, userID, id)
		if err != nil {
			events[2] = state.LoadFailed{Slice: SliceMembership, Err: err}
			return
		}
		events[2] = state.MembershipProbed{Favorites: favorites}
	})
	wg.Wait()

	var detail state.MovieDetail
	for _, ev := range events {
		detail = state.ReduceMovieDetail(detail, ev)
	}

	if movieErr != nil {
		return detail, movieErr
	}

	if len(detail.Failures) > 0 {
		s.log.Warn("Movie detail partially loaded",
			zap.Int("movie_id", id),
			zap.Strings("failed", detail.Failures),
		)
	}
	return detail, nil
}

func (s *movieService) SubmitMovie(ctx context.Context, st form.State, env form.Env, id int) form.State {
	st = form.MovieSchema.Reduce(st, form.Submit{}, env)
	if st.Phase != form.Submitting {
		s.log.Debug("Movie form rejected",
			zap.String("notice", st.Notice),
			zap.Int("errors", len(st.Errors)),
		)
		return st
	}

	payload, err := form.MoviePayload(st)
	if err != nil {
		return form.MovieSchema.Reduce(st, form.SubmitFailed{Err: err}, env)
	}

	var saved *entity.Movie
	if id == 0 {
		saved, err = s.repo.Movie.Create(ctx, payload)
	} else {
		saved, err = s.repo.Movie.Update(ctx, id, payload)
	}
	if err != nil {
		s.log.Error("Failed to save movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return form.MovieSchema.Reduce(st, form.SubmitFailed{Err: err}, env)
	}

	return form.MovieSchema.Reduce(st, form.SubmitSucceeded{ID: saved.ID}, env)
}

func (s *movieService) DeleteMovie(ctx context.Context, id int) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}
