package request

// MoviePayload is the body sent on create (POST) and update (PATCH). Year
// and duration are already coerced to integers.
type MoviePayload struct {
	Title     string `json:"title"`
	Director  string `json:"director"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	PosterURL string `json:"posterUrl"`
	Synopsis  string `json:"synopsis"`
	Duration  int    `json:"duration"`
	Rating    string `json:"rating"`
}

// MovieFilter is the list view's active predicate set.
type MovieFilter struct {
	Query string
	Genre string
}
