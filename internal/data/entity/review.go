package entity

import (
	"time"
)

type Review struct {
	Base
	MovieID   int       `json:"movieId"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"` // 1-5
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"createdAt"`

	// Present only when requested with _expand.
	Movie *Movie `json:"movie,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Author falls back to "Anonymous" when the user was not expanded.
func (r Review) Author() string {
	if r.User == nil || r.User.Username == "" {
		return "Anonymous"
	}
	return r.User.Username
}
