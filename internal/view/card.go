package view

import (
	"strconv"

	"movie-reviews/internal/data/entity"
)

// Card is the shared tile used by the movie grids.
type Card struct {
	Title    string
	Subtitle string
	Image    string
	Href     string
}

func MovieCard(m entity.Movie) Card {
	return Card{
		Title:    m.Title,
		Subtitle: strconv.Itoa(m.Year) + " • " + m.Genre,
		Image:    m.PosterURL,
		Href:     "/movies/" + strconv.Itoa(m.ID),
	}
}

func MovieCards(movies []entity.Movie) []Card {
	cards := make([]Card, len(movies))
	for i, m := range movies {
		cards[i] = MovieCard(m)
	}
	return cards
}
