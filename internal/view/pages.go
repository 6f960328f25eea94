package view

import (
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/state"
)

type HomeData struct {
	Movies  []Card
	Reviews []entity.Review
}

type MoviesData struct {
	Query  string
	Genre  string
	Genres []string
	Cards  []Card
	Empty  bool
}

func NewMoviesData(list state.MovieList) MoviesData {
	return MoviesData{
		Query:  list.Filter.Query,
		Genre:  list.Filter.Genre,
		Genres: list.Genres,
		Cards:  MovieCards(list.Visible),
		Empty:  list.Empty(),
	}
}

// FavoriteButton is the toggle partial on the movie page. FavoriteID is
// echoed back on the next toggle.
type FavoriteButton struct {
	MovieID    int
	IsFavorite bool
	FavoriteID int
}

type MovieDetailData struct {
	Movie    *entity.Movie
	Reviews  []entity.Review
	Favorite FavoriteButton
}

func NewMovieDetailData(d state.MovieDetail) MovieDetailData {
	data := MovieDetailData{
		Movie:   d.Movie,
		Reviews: d.Reviews,
	}
	if d.Movie != nil {
		data.Favorite = FavoriteButton{
			MovieID:    d.Movie.ID,
			IsFavorite: d.Membership.IsFavorite,
			FavoriteID: d.Membership.FavoriteID,
		}
	}
	return data
}

type MovieFormData struct {
	Heading string
	Form    FormView
}

type HelpfulButton struct {
	ReviewID int
	Helpful  int
}

type ReviewDetailData struct {
	Review   *entity.Review
	Helpful  HelpfulButton
	Comments CommentsData
}

// CommentsData is the comment section partial: the sub-form and the list.
type CommentsData struct {
	ReviewID int
	Form     FormView
	Comments []entity.Comment
}

func NewReviewDetailData(d state.ReviewDetail, comment FormView) ReviewDetailData {
	data := ReviewDetailData{
		Review: d.Review,
		Comments: CommentsData{
			Form:     comment,
			Comments: d.Comments,
		},
	}
	if d.Review != nil {
		data.Helpful = HelpfulButton{ReviewID: d.Review.ID, Helpful: d.Review.Helpful}
		data.Comments.ReviewID = d.Review.ID
	}
	return data
}

type FavoriteItem struct {
	ID          int
	Card        Card
	Missing     bool
	FavoritedAt time.Time
}

type FavoritesData struct {
	Items []FavoriteItem
	Empty bool
}

// NewFavoritesData renders favorites whose movie no longer exists as a
// plain "missing" tile.
func NewFavoritesData(list state.FavoriteList) FavoritesData {
	items := make([]FavoriteItem, len(list.Favorites))
	for i, fav := range list.Favorites {
		items[i] = FavoriteItem{ID: fav.ID, FavoritedAt: fav.FavoritedAt}
		if fav.Movie == nil {
			items[i].Missing = true
			continue
		}
		items[i].Card = MovieCard(*fav.Movie)
	}
	return FavoritesData{Items: items, Empty: list.Empty()}
}

// ConfirmData backs the confirmation page rendered when a destructive
// action is posted without confirm=yes.
type ConfirmData struct {
	Message    string
	Action     string
	CancelHref string
}

type ErrorData struct {
	Message string
}
