package form

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnv = Env{CurrentYear: 2025}

func validMovieValues() map[Field]string {
	return map[Field]string{
		Title:     "Dune",
		Director:  "Denis Villeneuve",
		Year:      "2021",
		Genre:     "Science Fiction",
		PosterURL: "https://example.com/dune.jpg",
		Synopsis:  "A noble family on Arrakis.",
		Duration:  "155",
		Rating:    "PG-13",
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	st := MovieSchema.New(nil)

	assert.Equal(t, Pristine, st.Phase)
	assert.Equal(t, "G", st.Values[Rating])
	assert.Equal(t, "", st.Values[Title])
}

func TestChangedValidatesOnlyTouchedFields(t *testing.T) {
	st := MovieSchema.New(nil)

	st = MovieSchema.Reduce(st, Changed{Field: Title, Value: "A"}, testEnv)
	assert.Equal(t, Editing, st.Phase)
	assert.Empty(t, st.Errors[Title], "untouched field must not be validated")

	st = MovieSchema.Reduce(st, Blurred{Field: Title}, testEnv)
	assert.Equal(t, "Title must be at least 2 characters", st.VisibleError(Title))

	st = MovieSchema.Reduce(st, Changed{Field: Title, Value: "Al"}, testEnv)
	assert.Empty(t, st.VisibleError(Title))
}

func TestReduceDoesNotMutatePrevious(t *testing.T) {
	prev := MovieSchema.New(nil)
	next := MovieSchema.Reduce(prev, Changed{Field: Title, Value: "Dune"}, testEnv)

	assert.Equal(t, "", prev.Values[Title])
	assert.Equal(t, "Dune", next.Values[Title])
}

func TestSubmitBlockedWithoutTerms(t *testing.T) {
	st := MovieSchema.New(validMovieValues())

	assert.False(t, MovieSchema.Valid(st, testEnv))

	st = MovieSchema.Reduce(st, Submit{}, testEnv)
	assert.Equal(t, Rejected, st.Phase)
	assert.Equal(t, TermsNotice, st.Notice)
}

func TestSubmitBlockedByUntouchedInvalidField(t *testing.T) {
	values := validMovieValues()
	values[Duration] = "0"
	st := MovieSchema.New(values)
	st = MovieSchema.Reduce(st, TermsToggled{Agreed: true}, testEnv)

	require.Empty(t, st.VisibleError(Duration))
	assert.False(t, MovieSchema.Valid(st, testEnv))

	st = MovieSchema.Reduce(st, Submit{}, testEnv)
	assert.Equal(t, Rejected, st.Phase)
	assert.Equal(t, "Please fix all errors before submitting", st.Notice)
	assert.Equal(t, "Duration must be between 1 and 500 minutes", st.VisibleError(Duration))
	for _, f := range MovieSchema.Fields {
		assert.True(t, st.Touched[f], "submit touches %s", f)
	}
}

func TestSubmitLifecycle(t *testing.T) {
	st := MovieSchema.New(validMovieValues())
	st = MovieSchema.Reduce(st, TermsToggled{Agreed: true}, testEnv)
	require.True(t, MovieSchema.Valid(st, testEnv))

	st = MovieSchema.Reduce(st, Submit{}, testEnv)
	require.Equal(t, Submitting, st.Phase)

	failed := MovieSchema.Reduce(st, SubmitFailed{Err: errors.New("boom")}, testEnv)
	assert.Equal(t, Rejected, failed.Phase)
	assert.EqualError(t, failed.Failure, "boom")
	assert.Equal(t, "Dune", failed.Values[Title], "input is kept after a failed submit")

	done := MovieSchema.Reduce(st, SubmitSucceeded{ID: 7}, testEnv)
	assert.Equal(t, Submitted, done.Phase)
	assert.Equal(t, 7, done.ID)

	ignored := MovieSchema.Reduce(done, Changed{Field: Title, Value: "x"}, testEnv)
	assert.Equal(t, done.Values[Title], ignored.Values[Title])
}

func TestRejectedReturnsToEditing(t *testing.T) {
	st := MovieSchema.Reduce(MovieSchema.New(nil), Submit{}, testEnv)
	require.Equal(t, Rejected, st.Phase)

	st = MovieSchema.Reduce(st, Changed{Field: Title, Value: "Dune"}, testEnv)
	assert.Equal(t, Editing, st.Phase)
	assert.Empty(t, st.VisibleError(Title))
}

func TestReplay(t *testing.T) {
	posted := url.Values{
		"title":      {"A"},
		"year":       {"2021"},
		TouchedKey:   {"title", "bogus"},
		TermsKey:     {"on"},
		"unexpected": {"x"},
	}

	st := MovieSchema.Replay(posted, testEnv)

	assert.Equal(t, Editing, st.Phase)
	assert.True(t, st.Agreed)
	assert.Equal(t, "A", st.Values[Title])
	assert.Equal(t, "G", st.Values[Rating])
	assert.Equal(t, "Title must be at least 2 characters", st.VisibleError(Title))
	assert.Empty(t, st.VisibleError(Year))
	assert.NotContains(t, st.Touched, Field("bogus"))
}

func TestCommentSchemaNeedsNoTerms(t *testing.T) {
	st := CommentSchema.Replay(url.Values{
		"commenterName": {"Sam"},
		"commentBody":   {"Loved this review"},
	}, testEnv)

	assert.True(t, CommentSchema.Valid(st, testEnv))
	st = CommentSchema.Reduce(st, Submit{}, testEnv)
	assert.Equal(t, Submitting, st.Phase)
}

func TestCommentSubmitRejected(t *testing.T) {
	st := CommentSchema.Replay(url.Values{"commentBody": {"hey"}}, testEnv)
	st = CommentSchema.Reduce(st, Submit{}, testEnv)

	assert.Equal(t, Rejected, st.Phase)
	assert.Equal(t, "Please fix all errors", st.Notice)
	assert.Equal(t, "Name is required", st.VisibleError(CommenterName))
	assert.Equal(t, "Comment must be at least 5 characters", st.VisibleError(CommentBody))
}

func TestMoviePayloadCoercesNumbers(t *testing.T) {
	values := validMovieValues()
	values[Year] = " 2021 "
	st := MovieSchema.New(values)

	payload, err := MoviePayload(st)
	require.NoError(t, err)
	assert.Equal(t, 2021, payload.Year)
	assert.Equal(t, 155, payload.Duration)
	assert.Equal(t, "Dune", payload.Title)

	values[Duration] = strings.Repeat("9", 30)
	_, err = MoviePayload(MovieSchema.New(values))
	assert.Error(t, err)
}
