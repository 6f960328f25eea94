package form

import (
	"time"

	"movie-reviews/internal/dto/request"
)

// CommentPayload builds the store payload for a submitting comment form.
func CommentPayload(st State, reviewID int, now time.Time) *request.CommentPayload {
	return &request.CommentPayload{
		ReviewID:      reviewID,
		CommenterName: st.Values[CommenterName],
		CommentBody:   st.Values[CommentBody],
		Timestamp:     now.UTC(),
	}
}
