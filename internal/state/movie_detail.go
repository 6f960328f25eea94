package state

import (
	"slices"

	"movie-reviews/internal/data/entity"
)

// Membership is what the page knows about the current user's favorite for
// the movie. A zero value means "not favorited".
type Membership struct {
	IsFavorite bool
	FavoriteID int
}

type MovieDetail struct {
	Movie      *entity.Movie
	Reviews    []entity.Review
	Membership Membership
	Failures   []string
}

type MovieEvent interface {
	movieEvent()
}

type MovieLoaded struct {
	Movie *entity.Movie
}

type ReviewsLoaded struct {
	Reviews []entity.Review
}

// MembershipProbed carries the result of favorites?userId=&movieId=. Only
// the first match is used.
type MembershipProbed struct {
	Favorites []entity.Favorite
}

type FavoriteAdded struct {
	Favorite entity.Favorite
}

type FavoriteRemoved struct{}

// LoadFailed marks one slice of a detail page whose fetch failed; the
// slice keeps its zero value.
type LoadFailed struct {
	Slice string
	Err   error
}

func (MovieLoaded) movieEvent()      {}
func (ReviewsLoaded) movieEvent()    {}
func (MembershipProbed) movieEvent() {}
func (FavoriteAdded) movieEvent()    {}
func (FavoriteRemoved) movieEvent()  {}
func (LoadFailed) movieEvent()       {}

func ReduceMovieDetail(prev MovieDetail, ev MovieEvent) MovieDetail {
	next := prev
	switch e := ev.(type) {
	case MovieLoaded:
		next.Movie = e.Movie
	case ReviewsLoaded:
		next.Reviews = slices.Clone(e.Reviews)
	case MembershipProbed:
		next.Membership = Membership{}
		if len(e.Favorites) > 0 {
			next.Membership = Membership{IsFavorite: true, FavoriteID: e.Favorites[0].ID}
		}
	case FavoriteAdded:
		next.Membership = Membership{IsFavorite: true, FavoriteID: e.Favorite.ID}
	case FavoriteRemoved:
		next.Membership = Membership{}
	case LoadFailed:
		next.Failures = append(slices.Clone(prev.Failures), e.Slice)
	default:
		return prev
	}
	return next
}
