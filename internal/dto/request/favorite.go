package request

import "time"

type FavoritePayload struct {
	UserID      int       `json:"userId"`
	MovieID     int       `json:"movieId"`
	FavoritedAt time.Time `json:"favoritedAt"`
}
