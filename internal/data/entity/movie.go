package entity

// Content ratings accepted by the movie form.
const (
	RatingG    = "G"
	RatingPG   = "PG"
	RatingPG13 = "PG-13"
	RatingR    = "R"
	RatingNC17 = "NC-17"
)

var ContentRatings = []string{RatingG, RatingPG, RatingPG13, RatingR, RatingNC17}

var Genres = []string{
	"Action",
	"Comedy",
	"Drama",
	"Horror",
	"Science Fiction",
	"Romance",
	"Thriller",
	"Crime",
	"Animation",
}

type Movie struct {
	Base
	Title     string `json:"title"`
	Director  string `json:"director"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	PosterURL string `json:"posterUrl"`
	Synopsis  string `json:"synopsis"`
	Duration  int    `json:"duration"` // minutes
	Rating    string `json:"rating"`
}
