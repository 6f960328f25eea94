package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/form"
	"movie-reviews/internal/state"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Error toasts for detail slices that failed to load.
var sliceToasts = map[string]string{
	usecase.SliceReviews:    "Failed to load reviews",
	usecase.SliceMembership: "Failed to load favorite status",
	usecase.SliceComments:   "Failed to load comments",
}

type MovieHandler struct {
	base
	service   usecase.MovieService
	favorites usecase.FavoriteService
}

func NewMovieHandler(service usecase.MovieService, favorites usecase.FavoriteService, b base, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		base:      b.with(log.With(zap.String("handler", "movie"))),
		service:   service,
		favorites: favorites,
	}
}

// GetMovies handles GET /movies?q=&genre=. HTMX requests get the grid only.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.MovieFilter{
		Query: query.Get("q"),
		Genre: query.Get("genre"),
	}

	list, err := h.service.ListMovies(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err, "list movies", "Failed to load movies")
		return
	}

	data := view.NewMoviesData(list)
	if utils.IsPartialRequest(r) {
		h.partial(w, "movie-grid", data)
		return
	}
	h.page(w, r, http.StatusOK, "movies", view.Title("All Movies"), data)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}

	detail, err := h.service.LoadDetail(r.Context(), id, currentUser(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get movie by ID", "Failed to load movie")
		return
	}
	for _, slice := range detail.Failures {
		h.toasts.Error(sliceToasts[slice])
	}

	h.page(w, r, http.StatusOK, "movie_detail", view.Title(detail.Movie.Title), view.NewMovieDetailData(detail))
}

// AddMovieForm handles GET /movies/add
func (h *MovieHandler) AddMovieForm(w http.ResponseWriter, r *http.Request) {
	st := form.MovieSchema.New(nil)
	h.renderForm(w, r, http.StatusOK, 0, "", st)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.notFound(w, r)
		return
	}

	env := h.env()
	st := form.MovieSchema.Replay(r.PostForm, env)
	st = h.service.SubmitMovie(r.Context(), st, env, 0)
	h.finishSubmit(w, r, 0, "", st, "Movie added successfully!", "Failed to add movie")
}

// EditMovieForm handles GET /movies/{id}/edit. The form starts pristine,
// filled from the stored movie.
func (h *MovieHandler) EditMovieForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get movie for edit", "Failed to load movie")
		return
	}

	st := form.MovieSchema.New(form.MovieValues(movie))
	h.renderForm(w, r, http.StatusOK, id, movie.Title, st)
}

// UpdateMovie handles POST /movies/{id}/edit and sends a PATCH.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.notFound(w, r)
		return
	}

	env := h.env()
	st := form.MovieSchema.Replay(r.PostForm, env)
	st = h.service.SubmitMovie(r.Context(), st, env, id)
	if errors.Is(st.Failure, database.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	h.finishSubmit(w, r, id, st.Values[form.Title], st, "Movie updated successfully!", "Failed to update movie")
}

// ValidateMovie handles POST /movies/validate: the posted form is replayed,
// the field named in "field" is blurred and the fields partial comes back.
func (h *MovieHandler) ValidateMovie(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.notFound(w, r)
		return
	}

	env := h.env()
	st := form.MovieSchema.Replay(r.PostForm, env)
	if field := form.Field(r.PostFormValue("field")); field != "" {
		if _, known := form.MovieSchema.Rules[field]; known {
			st = form.MovieSchema.Reduce(st, form.Blurred{Field: field}, env)
		}
	}

	id, _ := utils.ParseID(r.PostFormValue("movieId"))
	h.partial(w, "movie-fields", h.formView(id, st))
}

// DeleteMovie handles POST /movies/{id}/delete
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}
	if !confirmed(r) {
		h.confirm(w, r, "Delete Movie", "Are you sure you want to delete this movie?", movieHref(id))
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "delete movie", "Failed to delete movie")
		return
	}

	h.toasts.Success("Movie deleted successfully!")
	utils.Redirect(w, r, "/movies")
}

// ToggleFavorite handles POST /movies/{id}/favorite. Membership comes from
// the favoriteId the page was rendered with.
func (h *MovieHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}

	favoriteID, isFavorite := utils.ParseID(r.PostFormValue("favoriteId"))
	current := state.Membership{IsFavorite: isFavorite, FavoriteID: favoriteID}

	next, err := h.favorites.Toggle(r.Context(), id, currentUser(r), current)
	switch {
	case err != nil:
		h.log.Error("Failed to toggle favorite",
			zap.Error(err),
			zap.Int("movie_id", id))
		h.toasts.Error("Failed to update favorites")
		next = current
	case next.IsFavorite:
		h.toasts.Success("Added to favorites!")
	default:
		h.toasts.Info("Removed from favorites")
	}

	if utils.IsPartialRequest(r) {
		h.partial(w, "favorite-button", view.FavoriteButton{
			MovieID:    id,
			IsFavorite: next.IsFavorite,
			FavoriteID: next.FavoriteID,
		})
		return
	}
	utils.Redirect(w, r, movieHref(id))
}

// finishSubmit answers a movie form submission according to its phase.
func (h *MovieHandler) finishSubmit(w http.ResponseWriter, r *http.Request, id int, title string, st form.State, success, failure string) {
	switch {
	case st.Phase == form.Submitted:
		h.toasts.Success(success)
		utils.Redirect(w, r, movieHref(st.ID))

	case st.Failure != nil:
		h.log.Error("Movie form submit failed",
			zap.Error(st.Failure),
			zap.Int("movie_id", id))
		h.toasts.Error(failure)
		h.renderForm(w, r, http.StatusBadGateway, id, title, st)

	default:
		h.toasts.Error(st.Notice)
		h.renderForm(w, r, http.StatusUnprocessableEntity, id, title, st)
	}
}

func (h *MovieHandler) renderForm(w http.ResponseWriter, r *http.Request, status, id int, title string, st form.State) {
	data := view.MovieFormData{Heading: "Add New Movie", Form: h.formView(id, st)}
	pageTitle := view.Title("Add Movie")
	if id != 0 {
		data.Heading = "Edit Movie"
		pageTitle = view.Title("Edit " + title)
	}
	h.page(w, r, status, "movie_form", pageTitle, data)
}

func (h *MovieHandler) formView(id int, st form.State) view.FormView {
	fv := view.NewFormView(form.MovieSchema, st, h.env())
	fv.MovieID = id
	if id == 0 {
		fv.Action = "/movies"
		fv.SubmitLabel = "Add Movie"
		fv.CancelHref = "/movies"
	} else {
		fv.Action = movieHref(id) + "/edit"
		fv.SubmitLabel = "Update Movie"
		fv.CancelHref = movieHref(id)
	}
	return fv
}

func movieHref(id int) string {
	return "/movies/" + strconv.Itoa(id)
}
