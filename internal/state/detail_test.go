package state

import (
	"errors"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceMovieDetail(t *testing.T) {
	movie := &entity.Movie{Base: entity.Base{ID: 2}, Title: "Dune"}

	d := ReduceMovieDetail(MovieDetail{}, MovieLoaded{Movie: movie})
	d = ReduceMovieDetail(d, ReviewsLoaded{Reviews: []entity.Review{{Base: entity.Base{ID: 9}}}})
	d = ReduceMovieDetail(d, MembershipProbed{Favorites: []entity.Favorite{
		{Base: entity.Base{ID: 5}}, {Base: entity.Base{ID: 6}},
	}})

	assert.Equal(t, "Dune", d.Movie.Title)
	assert.Len(t, d.Reviews, 1)
	assert.Equal(t, Membership{IsFavorite: true, FavoriteID: 5}, d.Membership)

	removed := ReduceMovieDetail(d, FavoriteRemoved{})
	assert.Equal(t, Membership{}, removed.Membership)
	assert.True(t, d.Membership.IsFavorite, "previous snapshot is unchanged")

	added := ReduceMovieDetail(removed, FavoriteAdded{Favorite: entity.Favorite{Base: entity.Base{ID: 11}}})
	assert.Equal(t, Membership{IsFavorite: true, FavoriteID: 11}, added.Membership)
}

func TestEmptyProbeMeansNotFavorited(t *testing.T) {
	d := ReduceMovieDetail(MovieDetail{Membership: Membership{IsFavorite: true, FavoriteID: 3}}, MembershipProbed{})
	assert.False(t, d.Membership.IsFavorite)
	assert.Zero(t, d.Membership.FavoriteID)
}

func TestLoadFailedKeepsOtherSlices(t *testing.T) {
	d := ReduceMovieDetail(MovieDetail{}, MovieLoaded{Movie: &entity.Movie{Title: "Up"}})
	d = ReduceMovieDetail(d, LoadFailed{Slice: "reviews", Err: errors.New("down")})

	assert.Equal(t, []string{"reviews"}, d.Failures)
	assert.Equal(t, "Up", d.Movie.Title)
	assert.Nil(t, d.Reviews)
}

func TestReduceReviewDetail(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	review := &entity.Review{Base: entity.Base{ID: 1}, Helpful: 4}

	d := ReduceReviewDetail(ReviewDetail{}, ReviewLoaded{Review: review})
	d = ReduceReviewDetail(d, CommentsLoaded{Comments: []entity.Comment{
		{Base: entity.Base{ID: 1}, Timestamp: base},
		{Base: entity.Base{ID: 2}, Timestamp: base.Add(2 * time.Hour)},
		{Base: entity.Base{ID: 3}, Timestamp: base.Add(time.Hour)},
	}})

	require.Len(t, d.Comments, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{d.Comments[0].ID, d.Comments[1].ID, d.Comments[2].ID})

	marked := ReduceReviewDetail(d, HelpfulMarked{Helpful: 5})
	assert.Equal(t, 5, marked.Review.Helpful)
	assert.Equal(t, 4, review.Helpful, "the loaded review is not modified in place")
}

func TestHelpfulMarkedWithoutReview(t *testing.T) {
	d := ReduceReviewDetail(ReviewDetail{}, HelpfulMarked{Helpful: 1})
	assert.Nil(t, d.Review)
}

func TestNewestCommentsFirstIsStable(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []entity.Comment{
		{Base: entity.Base{ID: 1}, Timestamp: ts},
		{Base: entity.Base{ID: 2}, Timestamp: ts},
	}

	out := NewestCommentsFirst(in)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[1].ID)
}

func TestReduceFavoriteList(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := ReduceFavoriteList(FavoriteList{}, FavoritesLoaded{Favorites: []entity.Favorite{
		{Base: entity.Base{ID: 1}, FavoritedAt: ts},
		{Base: entity.Base{ID: 2}, FavoritedAt: ts.Add(48 * time.Hour)},
	}})

	assert.False(t, l.Empty())
	assert.Equal(t, 2, l.Favorites[0].ID)
	assert.True(t, ReduceFavoriteList(l, FavoritesLoaded{}).Empty())
}
