package entity

import (
	"time"
)

type Favorite struct {
	Base
	UserID      int       `json:"userId"`
	MovieID     int       `json:"movieId"`
	FavoritedAt time.Time `json:"favoritedAt"`

	Movie *Movie `json:"movie,omitempty"`
}
