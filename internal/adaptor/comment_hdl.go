package adaptor

import (
	"net/http"

	"movie-reviews/internal/form"
	"movie-reviews/internal/state"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	base
	service usecase.CommentService
	reviews usecase.ReviewService
}

func NewCommentHandler(service usecase.CommentService, reviews usecase.ReviewService, b base, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		base:    b.with(log.With(zap.String("handler", "comment"))),
		service: service,
		reviews: reviews,
	}
}

// AddComment handles POST /reviews/{id}/comments
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.notFound(w, r)
		return
	}

	env := h.env()
	st := form.CommentSchema.Replay(r.PostForm, env)
	st = h.service.AddComment(r.Context(), reviewID, st, env)

	status := http.StatusOK
	switch {
	case st.Phase == form.Submitted:
		h.toasts.Success("Comment added!")
		if !utils.IsPartialRequest(r) {
			utils.Redirect(w, r, reviewHref(reviewID))
			return
		}
		st = form.CommentSchema.New(nil)

	case st.Failure != nil:
		h.toasts.Error("Failed to add comment")
		status = http.StatusBadGateway

	default:
		h.toasts.Error(st.Notice)
		status = http.StatusUnprocessableEntity
	}

	commentForm := view.NewFormView(form.CommentSchema, st, env)

	if utils.IsPartialRequest(r) {
		comments, err := h.service.ListComments(r.Context(), reviewID)
		if err != nil {
			h.log.Warn("Failed to reload comments", zap.Error(err), zap.Int("review_id", reviewID))
			h.toasts.Error(sliceToasts[usecase.SliceComments])
		}
		h.partial(w, "comments", view.CommentsData{
			ReviewID: reviewID,
			Form:     commentForm,
			Comments: comments,
		})
		return
	}

	detail, err := h.reviews.LoadDetail(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, r, err, "reload review", "Failed to load review")
		return
	}
	h.renderDetail(w, r, status, detail, commentForm)
}

// DeleteComment handles POST /reviews/{id}/comments/{commentID}/delete
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		h.notFound(w, r)
		return
	}
	commentID, ok := pathID(r, "commentID")
	if !ok {
		h.notFound(w, r)
		return
	}
	if !confirmed(r) {
		h.confirm(w, r, "Delete Comment", "Are you sure you want to delete this comment?", reviewHref(reviewID))
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		h.handleServiceError(w, r, err, "delete comment", "Failed to delete comment")
		return
	}

	h.toasts.Success("Comment deleted!")
	utils.Redirect(w, r, reviewHref(reviewID))
}

func (h *CommentHandler) renderDetail(w http.ResponseWriter, r *http.Request, status int, detail state.ReviewDetail, commentForm view.FormView) {
	h.page(w, r, status, "review_detail", detail.Review.Title+" - Review Details",
		view.NewReviewDetailData(detail, commentForm))
}
