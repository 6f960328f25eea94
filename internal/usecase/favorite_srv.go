package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/state"

	"go.uber.org/zap"
)

type FavoriteService interface {
	// Toggle flips membership as the page last saw it: a favorited movie is
	// removed by id, anything else is added. The store is not re-probed.
	Toggle(ctx context.Context, movieID, userID int, current state.Membership) (state.Membership, error)
	ListFavorites(ctx context.Context, userID int) (state.FavoriteList, error)
	RemoveFavorite(ctx context.Context, id int) error
}

type favoriteService struct {
	repo repository.FavoriteRepository
	log  *zap.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) Toggle(ctx context.Context, movieID, userID int, current state.Membership) (state.Membership, error) {
	detail := state.MovieDetail{Membership: current}

	if current.IsFavorite {
		if err := s.repo.Delete(ctx, current.FavoriteID); err != nil {
			return current, fmt.Errorf("remove favorite: %w", err)
		}
		detail = state.ReduceMovieDetail(detail, state.FavoriteRemoved{})
	} else {
		created, err := s.repo.Create(ctx, &request.FavoritePayload{
			UserID:      userID,
			MovieID:     movieID,
			FavoritedAt: clock().UTC(),
		})
		if err != nil {
			return current, fmt.Errorf("add favorite: %w", err)
		}
		detail = state.ReduceMovieDetail(detail, state.FavoriteAdded{Favorite: *created})
	}

	s.log.Info("Favorite toggled",
		zap.Int("movie_id", movieID),
		zap.Int("user_id", userID),
		zap.Bool("is_favorite", detail.Membership.IsFavorite),
	)
	return detail.Membership, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID int) (state.FavoriteList, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return state.FavoriteList{}, fmt.Errorf("list favorites: %w", err)
	}
	return state.ReduceFavoriteList(state.FavoriteList{}, state.FavoritesLoaded{Favorites: favorites}), nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
