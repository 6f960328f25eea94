package entity

import (
	"time"
)

type Comment struct {
	Base
	ReviewID      int       `json:"reviewId"`
	CommenterName string    `json:"commenterName"`
	CommentBody   string    `json:"commentBody"`
	Timestamp     time.Time `json:"timestamp"`
}
