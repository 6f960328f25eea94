package adaptor

import (
	"net/http"
	"strconv"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/form"
	"movie-reviews/internal/state"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	base
	service usecase.ReviewService
}

func NewReviewHandler(service usecase.ReviewService, b base, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		base:    b.with(log.With(zap.String("handler", "review"))),
		service: service,
	}
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list reviews", "Failed to load reviews")
		return
	}

	h.page(w, r, http.StatusOK, "reviews", view.Title("All Reviews"), reviews)
}

// GetReviewByID handles GET /reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}

	detail, err := h.service.LoadDetail(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get review by ID", "Failed to load review")
		return
	}
	for _, slice := range detail.Failures {
		h.toasts.Error(sliceToasts[slice])
	}

	env := h.env()
	comment := view.NewFormView(form.CommentSchema, form.CommentSchema.New(nil), env)
	h.page(w, r, http.StatusOK, "review_detail", detail.Review.Title+" - Review Details",
		view.NewReviewDetailData(detail, comment))
}

// MarkHelpful handles POST /reviews/{id}/helpful. The posted counter is the
// one the page displayed.
func (h *ReviewHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}

	current, err := strconv.Atoi(r.PostFormValue("helpful"))
	if err != nil || current < 0 {
		current = 0
	}

	shown := state.ReduceReviewDetail(state.ReviewDetail{}, state.ReviewLoaded{
		Review: &entity.Review{Base: entity.Base{ID: id}, Helpful: current},
	})
	detail, err := h.service.MarkHelpful(r.Context(), shown)
	if err != nil {
		h.log.Error("Failed to mark review helpful",
			zap.Error(err),
			zap.Int("review_id", id))
		h.toasts.Error("Failed to mark as helpful")
	} else {
		h.toasts.Success("Marked as helpful!")
	}

	if utils.IsPartialRequest(r) {
		h.partial(w, "helpful-button", view.HelpfulButton{ReviewID: id, Helpful: detail.Review.Helpful})
		return
	}
	utils.Redirect(w, r, reviewHref(id))
}

func reviewHref(id int) string {
	return "/reviews/" + strconv.Itoa(id)
}
