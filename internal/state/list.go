package state

import (
	"slices"
	"strings"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
)

// AllGenres is the synthetic genre option that disables genre filtering.
const AllGenres = "all"

type MovieList struct {
	Source  []entity.Movie
	Filter  request.MovieFilter
	Visible []entity.Movie
	Genres  []string
}

type ListEvent interface {
	listEvent()
}

type MoviesLoaded struct {
	Movies []entity.Movie
}

type QueryChanged struct {
	Query string
}

type GenreChanged struct {
	Genre string
}

func (MoviesLoaded) listEvent() {}
func (QueryChanged) listEvent() {}
func (GenreChanged) listEvent() {}

func NewMovieList() MovieList {
	return MovieList{
		Filter: request.MovieFilter{Genre: AllGenres},
		Genres: []string{AllGenres},
	}
}

// ReduceMovieList recomputes the visible subset whenever the source or the
// filter changes.
func ReduceMovieList(prev MovieList, ev ListEvent) MovieList {
	next := prev
	switch e := ev.(type) {
	case MoviesLoaded:
		next.Source = slices.Clone(e.Movies)
		next.Genres = GenreOptions(next.Source)
	case QueryChanged:
		next.Filter.Query = e.Query
	case GenreChanged:
		next.Filter.Genre = e.Genre
		if next.Filter.Genre == "" {
			next.Filter.Genre = AllGenres
		}
	default:
		return prev
	}
	next.Visible = FilterMovies(next.Source, next.Filter)
	return next
}

// Empty reports the "no results" state.
func (l MovieList) Empty() bool {
	return len(l.Visible) == 0
}

// FilterMovies keeps movies whose genre equals f.Genre (unless it is "all")
// and whose title contains f.Query, ignoring case. The input slice is not
// modified and the relative order is preserved.
func FilterMovies(movies []entity.Movie, f request.MovieFilter) []entity.Movie {
	query := strings.ToLower(f.Query)
	result := make([]entity.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Genre != "" && f.Genre != AllGenres && m.Genre != f.Genre {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		result = append(result, m)
	}
	return result
}

// GenreOptions returns "all" followed by the distinct genres of movies in
// first-seen order.
func GenreOptions(movies []entity.Movie) []string {
	options := []string{AllGenres}
	seen := make(map[string]bool)
	for _, m := range movies {
		if m.Genre == "" || seen[m.Genre] {
			continue
		}
		seen[m.Genre] = true
		options = append(options, m.Genre)
	}
	return options
}
