package form

import (
	"fmt"
	"strconv"
	"strings"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
)

// MovieValues pre-fills the movie form from a stored movie.
func MovieValues(m *entity.Movie) map[Field]string {
	return map[Field]string{
		Title:     m.Title,
		Director:  m.Director,
		Year:      strconv.Itoa(m.Year),
		Genre:     m.Genre,
		PosterURL: m.PosterURL,
		Synopsis:  m.Synopsis,
		Duration:  strconv.Itoa(m.Duration),
		Rating:    m.Rating,
	}
}

// MoviePayload coerces a submitting movie form into the store payload.
func MoviePayload(st State) (*request.MoviePayload, error) {
	year, err := strconv.Atoi(strings.TrimSpace(st.Values[Year]))
	if err != nil {
		return nil, fmt.Errorf("coerce year: %w", err)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(st.Values[Duration]))
	if err != nil {
		return nil, fmt.Errorf("coerce duration: %w", err)
	}

	return &request.MoviePayload{
		Title:     st.Values[Title],
		Director:  st.Values[Director],
		Year:      year,
		Genre:     st.Values[Genre],
		PosterURL: st.Values[PosterURL],
		Synopsis:  st.Values[Synopsis],
		Duration:  duration,
		Rating:    st.Values[Rating],
	}, nil
}
