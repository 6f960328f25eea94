// Package form holds the client-side validation rules and the form state
// machine shared by the movie and comment forms.
package form

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/utils"
)

// Field identifies one input of a form.
type Field string

const (
	Title     Field = "title"
	Director  Field = "director"
	Year      Field = "year"
	Genre     Field = "genre"
	PosterURL Field = "posterUrl"
	Synopsis  Field = "synopsis"
	Duration  Field = "duration"
	Rating    Field = "rating"

	CommenterName Field = "commenterName"
	CommentBody   Field = "commentBody"
)

const (
	firstFilmYear  = 1888
	minTitleLen    = 2
	minSynopsisLen = 20
	maxSynopsisLen = 500
	minDuration    = 1
	maxDuration    = 500
	minCommentLen  = 5
)

// validator tags for the length and range checks.
var (
	titleTag       = fmt.Sprintf("min=%d", minTitleLen)
	synopsisMinTag = fmt.Sprintf("min=%d", minSynopsisLen)
	synopsisMaxTag = fmt.Sprintf("max=%d", maxSynopsisLen)
	durationTag    = fmt.Sprintf("gte=%d,lte=%d", minDuration, maxDuration)
	commentTag     = fmt.Sprintf("min=%d", minCommentLen)
)

// Env is the ambient input a rule may depend on.
type Env struct {
	CurrentYear int
}

// EnvAt builds the Env for the given instant.
func EnvAt(now time.Time) Env {
	return Env{CurrentYear: now.Year()}
}

// Rule returns "" for a valid value or a message for the user.
type Rule func(value string, env Env) string

// Rules maps each field of a form to its validation function.
type Rules map[Field]Rule

var MovieRules = Rules{
	Title:     validateTitle,
	Director:  validateDirector,
	Year:      validateYear,
	Genre:     validateGenre,
	PosterURL: validatePosterURL,
	Synopsis:  validateSynopsis,
	Duration:  validateDuration,
	Rating:    validateRating,
}

var CommentRules = Rules{
	CommenterName: validateCommenterName,
	CommentBody:   validateCommentBody,
}

// Validate runs the rule registered for field. Fields without a rule are
// always valid.
func (rs Rules) Validate(field Field, value string, env Env) string {
	rule, ok := rs[field]
	if !ok {
		return ""
	}
	return rule(value, env)
}

// ValidateAll returns the complete error set for values.
func (rs Rules) ValidateAll(values map[Field]string, env Env) map[Field]string {
	errs := make(map[Field]string)
	for field, rule := range rs {
		if msg := rule(values[field], env); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	return n, err == nil
}

func validateTitle(value string, _ Env) string {
	if blank(value) {
		return "Title is required"
	}
	if !utils.ValidateVar(value, titleTag) {
		return "Title must be at least 2 characters"
	}
	return ""
}

func validateDirector(value string, _ Env) string {
	if blank(value) {
		return "Director is required"
	}
	return ""
}

func validateYear(value string, env Env) string {
	if blank(value) {
		return "Year is required"
	}
	year, ok := parseInt(value)
	if !ok || !utils.ValidateVar(year, fmt.Sprintf("gte=%d,lte=%d", firstFilmYear, env.CurrentYear+2)) {
		return "Please enter a valid year"
	}
	return ""
}

func validateGenre(value string, _ Env) string {
	if value == "" {
		return "Genre is required"
	}
	if !slices.Contains(entity.Genres, value) {
		return "Please select a valid genre"
	}
	return ""
}

func validatePosterURL(value string, _ Env) string {
	if blank(value) {
		return "Poster URL is required"
	}
	if !utils.IsURL(value) {
		return "Please enter a valid URL"
	}
	return ""
}

func validateSynopsis(value string, _ Env) string {
	if blank(value) {
		return "Synopsis is required"
	}
	if !utils.ValidateVar(value, synopsisMinTag) {
		return "Synopsis must be at least 20 characters"
	}
	if !utils.ValidateVar(value, synopsisMaxTag) {
		return "Synopsis must be 500 characters or fewer"
	}
	return ""
}

func validateDuration(value string, _ Env) string {
	if blank(value) {
		return "Duration is required"
	}
	minutes, ok := parseInt(value)
	if !ok || !utils.ValidateVar(minutes, durationTag) {
		return "Duration must be between 1 and 500 minutes"
	}
	return ""
}

func validateRating(value string, _ Env) string {
	if !slices.Contains(entity.ContentRatings, value) {
		return "Please select a rating"
	}
	return ""
}

func validateCommenterName(value string, _ Env) string {
	if blank(value) {
		return "Name is required"
	}
	return ""
}

func validateCommentBody(value string, _ Env) string {
	if blank(value) {
		return "Comment is required"
	}
	if !utils.ValidateVar(value, commentTag) {
		return "Comment must be at least 5 characters"
	}
	return ""
}
