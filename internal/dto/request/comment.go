package request

import "time"

type CommentPayload struct {
	ReviewID      int       `json:"reviewId"`
	CommenterName string    `json:"commenterName"`
	CommentBody   string    `json:"commentBody"`
	Timestamp     time.Time `json:"timestamp"`
}
