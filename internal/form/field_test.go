package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovieRules(t *testing.T) {
	env := Env{CurrentYear: 2025}

	tests := []struct {
		name  string
		field Field
		value string
		want  string
	}{
		{"title empty", Title, "", "Title is required"},
		{"title blank", Title, "   ", "Title is required"},
		{"title short", Title, "A", "Title must be at least 2 characters"},
		{"title ok", Title, "Up", ""},
		{"title one rune", Title, "Ü", "Title must be at least 2 characters"},
		{"title two runes", Title, "Üb", ""},
		{"director empty", Director, " ", "Director is required"},
		{"director ok", Director, "Denis Villeneuve", ""},
		{"year empty", Year, "", "Year is required"},
		{"year before cinema", Year, "1887", "Please enter a valid year"},
		{"year first film", Year, "1888", ""},
		{"year two ahead", Year, "2027", ""},
		{"year three ahead", Year, "2028", "Please enter a valid year"},
		{"year far future", Year, "2099", "Please enter a valid year"},
		{"year not a number", Year, "soon", "Please enter a valid year"},
		{"genre empty", Genre, "", "Genre is required"},
		{"genre unknown", Genre, "Western", "Please select a valid genre"},
		{"genre ok", Genre, "Science Fiction", ""},
		{"poster empty", PosterURL, "", "Poster URL is required"},
		{"poster relative", PosterURL, "poster.jpg", "Please enter a valid URL"},
		{"poster ok", PosterURL, "https://example.com/poster.jpg", ""},
		{"synopsis empty", Synopsis, "", "Synopsis is required"},
		{"synopsis short", Synopsis, strings.Repeat("a", 19), "Synopsis must be at least 20 characters"},
		{"synopsis min", Synopsis, strings.Repeat("a", 20), ""},
		{"synopsis max", Synopsis, strings.Repeat("a", 500), ""},
		{"synopsis counts runes", Synopsis, strings.Repeat("é", 500), ""},
		{"synopsis long", Synopsis, strings.Repeat("a", 501), "Synopsis must be 500 characters or fewer"},
		{"duration empty", Duration, "", "Duration is required"},
		{"duration zero", Duration, "0", "Duration must be between 1 and 500 minutes"},
		{"duration one", Duration, "1", ""},
		{"duration max", Duration, "500", ""},
		{"duration over", Duration, "501", "Duration must be between 1 and 500 minutes"},
		{"duration negative", Duration, "-5", "Duration must be between 1 and 500 minutes"},
		{"rating unknown", Rating, "X", "Please select a rating"},
		{"rating ok", Rating, "PG-13", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MovieRules.Validate(tt.field, tt.value, env))
		})
	}
}

func TestYearUpperBoundFollowsClock(t *testing.T) {
	assert.NotEmpty(t, MovieRules.Validate(Year, "2099", Env{CurrentYear: 2096}))
	assert.Empty(t, MovieRules.Validate(Year, "2099", Env{CurrentYear: 2097}))
}

func TestCommentRules(t *testing.T) {
	env := Env{}

	assert.Equal(t, "Name is required", CommentRules.Validate(CommenterName, "  ", env))
	assert.Equal(t, "", CommentRules.Validate(CommenterName, "Sam", env))
	assert.Equal(t, "Comment is required", CommentRules.Validate(CommentBody, "", env))
	assert.Equal(t, "Comment must be at least 5 characters", CommentRules.Validate(CommentBody, "nice", env))
	assert.Equal(t, "", CommentRules.Validate(CommentBody, "great", env))
}

func TestUnknownFieldIsValid(t *testing.T) {
	assert.Empty(t, MovieRules.Validate(Field("nickname"), "", Env{}))
}

func TestValidateAll(t *testing.T) {
	errs := MovieRules.ValidateAll(map[Field]string{Title: "Dune", Rating: "G"}, Env{CurrentYear: 2025})

	assert.NotContains(t, errs, Title)
	assert.NotContains(t, errs, Rating)
	assert.Equal(t, "Director is required", errs[Director])
	assert.Len(t, errs, 6)
}
