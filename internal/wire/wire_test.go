package wire

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/notify"
	"movie-reviews/internal/storetest"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testApp struct {
	router *chi.Mux
	store  *storetest.Server
	center *notify.Center
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := zaptest.NewLogger(t)

	fake := storetest.New(t)
	store, err := database.InitStore(fake.Config())
	require.NoError(t, err)

	center := notify.NewCenter(utils.NotifyConfig{TTL: time.Minute, Buffer: 32}, log)
	t.Cleanup(center.Close)

	config := &utils.Config{Session: utils.SessionConfig{CurrentUserID: 1}}
	app, err := Wiring(Deps{Store: store, Center: center, Hub: notify.NewHub(log)}, config, log)
	require.NoError(t, err)

	return &testApp{router: app.Router, store: fake, center: center}
}

func (a *testApp) get(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) toasts() []string {
	var out []string
	for _, t := range a.center.Active() {
		out = append(out, t.Message)
	}
	return out
}

func duneForm() url.Values {
	return url.Values{
		"title":         {"Dune"},
		"director":      {"Denis Villeneuve"},
		"year":          {"2021"},
		"genre":         {"Science Fiction"},
		"posterUrl":     {"https://example.com/dune.jpg"},
		"synopsis":      {"A desert planet epic saga"},
		"duration":      {"155"},
		"rating":        {"PG-13"},
		"agreedToTerms": {"on"},
	}
}

func TestAddMovieEndToEnd(t *testing.T) {
	app := newTestApp(t)

	rec := app.post("/movies", duneForm(), false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/movies/1", rec.Header().Get("Location"))

	posts := app.store.Requests(http.MethodPost, "movies")
	require.Len(t, posts, 1)
	assert.Equal(t, float64(2021), posts[0].Body["year"])
	assert.Equal(t, float64(155), posts[0].Body["duration"])
	assert.Equal(t, "Science Fiction", posts[0].Body["genre"])
	assert.Contains(t, app.toasts(), "Movie added successfully!")

	detail := app.get("/movies/1", false)
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "<title>Dune - Movie Reviews</title>")
	assert.Contains(t, detail.Body.String(), "No reviews yet. Be the first to review this movie!")
}

func TestAddMovieHTMXRedirect(t *testing.T) {
	app := newTestApp(t)

	rec := app.post("/movies", duneForm(), true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/movies/1", rec.Header().Get("HX-Redirect"))
}

func TestAddMovieWithoutTerms(t *testing.T) {
	app := newTestApp(t)
	form := duneForm()
	form.Del("agreedToTerms")

	rec := app.post("/movies", form, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please agree to the terms and conditions")
	assert.Contains(t, rec.Body.String(), `value="Dune"`)
	assert.Empty(t, app.store.Requests(http.MethodPost, "movies"))
}

func TestAddMovieInvalidFields(t *testing.T) {
	app := newTestApp(t)
	form := duneForm()
	form.Set("year", "1887")

	rec := app.post("/movies", form, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid year")
	assert.Contains(t, app.toasts(), "Please fix all errors before submitting")
	assert.Empty(t, app.store.Requests(http.MethodPost, "movies"))
}

func TestAddMovieStoreFailure(t *testing.T) {
	app := newTestApp(t)
	app.store.Fail(http.MethodPost, "/movies", http.StatusInternalServerError)

	rec := app.post("/movies", duneForm(), false)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Dune"`)
	assert.Contains(t, app.toasts(), "Failed to add movie")
}

func TestValidatePartial(t *testing.T) {
	app := newTestApp(t)

	rec := app.post("/movies/validate", url.Values{"title": {"D"}, "field": {"title"}}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Title must be at least 2 characters")
	assert.NotContains(t, body, "Director is required", "untouched fields stay quiet")
	assert.NotContains(t, body, "<html")
}

// inputTrigger returns the hx-trigger rendered on the input with the given id.
func inputTrigger(t *testing.T, body, id string) string {
	t.Helper()
	m := regexp.MustCompile(`id="` + id + `"[^>]*hx-trigger="([^"]*)"`).FindStringSubmatch(body)
	require.NotNil(t, m, "no hx-trigger on #%s", id)
	return m[1]
}

func TestTouchedFieldRevalidatesOnEdit(t *testing.T) {
	app := newTestApp(t)

	blurred := app.post("/movies/validate", url.Values{"title": {"A"}, "field": {"title"}}, true)
	body := blurred.Body.String()
	assert.Equal(t, "blur, input changed delay:300ms", inputTrigger(t, body, "title"))
	assert.Equal(t, "blur", inputTrigger(t, body, "director"))
	assert.Equal(t, "blur", inputTrigger(t, body, "synopsis"))

	// The edit request carries the touched list but no blurred field.
	edited := app.post("/movies/validate", url.Values{"title": {"Alien"}, "touched": {"title"}}, true)
	body = edited.Body.String()
	assert.NotContains(t, body, "Title must be at least 2 characters")
	assert.NotContains(t, body, "Director is required")
	assert.Equal(t, "blur, input changed delay:300ms", inputTrigger(t, body, "title"))
	assert.Equal(t, "blur", inputTrigger(t, body, "director"))
}

func TestSubmitGateFollowsEveryRender(t *testing.T) {
	app := newTestApp(t)
	form := duneForm()
	form.Set("synopsis", "too short")
	form["touched"] = []string{"synopsis"}

	invalid := app.post("/movies/validate", form, true)
	assert.Contains(t, invalid.Body.String(), `data-invalid="true"`)
	assert.Contains(t, invalid.Body.String(), "Synopsis must be at least 20 characters")

	form.Set("synopsis", "A desert planet epic saga")
	valid := app.post("/movies/validate", form, true)
	assert.NotContains(t, valid.Body.String(), `data-invalid="true"`)
	assert.NotContains(t, valid.Body.String(), "Synopsis must be at least 20 characters")
}

func TestEditMovie(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{
		Title: "Dune", Director: "Denis Villeneuve", Year: 2021, Genre: "Science Fiction",
		PosterURL: "https://example.com/dune.jpg", Synopsis: "A desert planet epic saga",
		Duration: 155, Rating: "PG-13",
	})

	page := app.get("/movies/1/edit", false)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "<title>Edit Dune - Movie Reviews</title>")
	assert.Contains(t, page.Body.String(), `value="Denis Villeneuve"`)

	form := duneForm()
	form.Set("duration", "156")
	rec := app.post("/movies/1/edit", form, false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/movies/1", rec.Header().Get("Location"))
	assert.Len(t, app.store.Requests(http.MethodPatch, "movies"), 1)
	assert.Empty(t, app.store.Requests(http.MethodPost, "movies"))
	assert.Equal(t, float64(156), app.store.Records("movies")[0]["duration"])
	assert.Contains(t, app.toasts(), "Movie updated successfully!")
}

func TestMoviesFilterPartial(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies",
		entity.Movie{Title: "Dune", Genre: "Science Fiction"},
		entity.Movie{Title: "Heat", Genre: "Crime"},
	)

	full := app.get("/movies", false)
	require.Equal(t, http.StatusOK, full.Code)
	assert.Contains(t, full.Body.String(), "<title>All Movies - Movie Reviews</title>")
	assert.Contains(t, full.Body.String(), "All Genres")

	partial := app.get("/movies?q=DUNE", true)
	body := partial.Body.String()
	assert.Contains(t, body, "Dune")
	assert.NotContains(t, body, "Heat")
	assert.NotContains(t, body, "<html")

	none := app.get("/movies?genre=Horror", true)
	assert.Contains(t, none.Body.String(), "No movies found matching your criteria.")
}

func TestToggleFavorite(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{Title: "Up"})

	added := app.post("/movies/1/favorite", url.Values{"favoriteId": {""}}, true)
	require.Equal(t, http.StatusOK, added.Code)
	assert.Contains(t, added.Body.String(), "★ Favorited")
	assert.Len(t, app.store.Records("favorites"), 1)
	assert.Contains(t, app.toasts(), "Added to favorites!")

	removed := app.post("/movies/1/favorite", url.Values{"favoriteId": {"1"}}, true)
	assert.Contains(t, removed.Body.String(), "☆ Add to Favorites")
	assert.Empty(t, app.store.Records("favorites"))
	assert.Contains(t, app.toasts(), "Removed from favorites")
}

func TestDeleteMovieNeedsConfirmation(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{Title: "Up"})

	ask := app.post("/movies/1/delete", url.Values{}, false)
	require.Equal(t, http.StatusOK, ask.Code)
	assert.Contains(t, ask.Body.String(), "<title>Delete Movie - Movie Reviews</title>")
	assert.Empty(t, app.store.Requests(http.MethodDelete, "movies"))

	done := app.post("/movies/1/delete", url.Values{"confirm": {"yes"}}, false)
	require.Equal(t, http.StatusSeeOther, done.Code)
	assert.Equal(t, "/movies", done.Header().Get("Location"))
	assert.Empty(t, app.store.Records("movies"))
	assert.Contains(t, app.toasts(), "Movie deleted successfully!")
}

func TestReviewDetailAndComments(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{Title: "Heat"})
	app.store.Seed("users", entity.User{Username: "vincent"})
	app.store.Seed("reviews", entity.Review{MovieID: 1, UserID: 1, Title: "Classic", Content: "Still holds up.", Rating: 5, Helpful: 2})

	page := app.get("/reviews/1", false)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "<title>Classic - Review Details</title>")
	assert.Contains(t, page.Body.String(), "By vincent")
	assert.Contains(t, page.Body.String(), "← Back to Heat")

	helpful := app.post("/reviews/1/helpful", url.Values{"helpful": {"2"}}, true)
	assert.Contains(t, helpful.Body.String(), "Helpful (3)")
	assert.Contains(t, app.toasts(), "Marked as helpful!")

	bad := app.post("/reviews/1/comments", url.Values{"commenterName": {"Ann"}, "commentBody": {"ok"}}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, bad.Code)
	assert.Contains(t, bad.Body.String(), "Comment must be at least 5 characters")
	assert.Contains(t, app.toasts(), "Please fix all errors")

	good := app.post("/reviews/1/comments", url.Values{"commenterName": {"Ann"}, "commentBody": {"Agreed, a classic."}}, false)
	require.Equal(t, http.StatusSeeOther, good.Code)
	assert.Equal(t, "/reviews/1", good.Header().Get("Location"))
	require.Len(t, app.store.Records("comments"), 1)

	del := app.post("/reviews/1/comments/1/delete", url.Values{"confirm": {"yes"}}, false)
	require.Equal(t, http.StatusSeeOther, del.Code)
	assert.Empty(t, app.store.Records("comments"))
	assert.Contains(t, app.toasts(), "Comment deleted!")
}

func TestMarkHelpfulFailureKeepsCounter(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("reviews", entity.Review{Title: "Classic", Helpful: 2})
	app.store.Fail(http.MethodPatch, "/reviews/1", http.StatusInternalServerError)

	rec := app.post("/reviews/1/helpful", url.Values{"helpful": {"2"}}, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Helpful (2)")
	assert.Contains(t, app.toasts(), "Failed to mark as helpful")
}

func TestPanicRendersErrorPage(t *testing.T) {
	app := newTestApp(t)
	app.router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := app.get("/boom", false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Error - Movie Reviews</title>")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestFavoritesPage(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{Title: "Up", Year: 2009, Genre: "Animation"})
	app.store.Seed("favorites",
		entity.Favorite{UserID: 1, MovieID: 1, FavoritedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		entity.Favorite{UserID: 2, MovieID: 1},
	)

	page := app.get("/favorites", false)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "<title>My Favorites - Movie Reviews</title>")
	assert.Contains(t, page.Body.String(), "2009 • Animation")
	assert.Contains(t, page.Body.String(), "Added: Jan 2, 2025")

	rec := app.post("/favorites/1/delete", url.Values{"confirm": {"yes"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, app.store.Records("favorites"), 1)

	empty := app.get("/favorites", false)
	assert.Contains(t, empty.Body.String(), "You haven't added any favorites yet.")
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/nowhere", "/movies/abc", "/movies/99", "/reviews/7"} {
		rec := app.get(path, false)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "<title>404 - Page Not Found</title>", path)
	}
}

func TestHomeAndHealth(t *testing.T) {
	app := newTestApp(t)
	app.store.Seed("movies", entity.Movie{Title: "A"}, entity.Movie{Title: "B"}, entity.Movie{Title: "C"}, entity.Movie{Title: "D"})

	home := app.get("/", false)
	require.Equal(t, http.StatusOK, home.Code)
	body := home.Body.String()
	assert.Contains(t, body, "<title>Home - Movie Reviews</title>")
	assert.Contains(t, body, `class="nav-link active" aria-current="page">Home`)
	assert.Contains(t, body, ">C</h3>")
	assert.NotContains(t, body, ">D</h3>")

	health := app.get("/health", false)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK", health.Body.String())
}

func TestStaticAndNotifications(t *testing.T) {
	app := newTestApp(t)

	css := app.get("/static/app.css", false)
	assert.Equal(t, http.StatusOK, css.Code)

	app.center.Info("hello")
	rec := app.get("/notifications", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"hello"`)
}
