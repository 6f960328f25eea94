package view

import (
	"slices"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/form"
)

// FieldView is one input as the templates see it.
type FieldView struct {
	Name    string
	Label   string
	Value   string
	Error   string
	Touched bool
}

// Live validation triggers for text-like inputs. Once a field is touched
// every edit is validated, not only the next blur.
const (
	TriggerBlur = "blur"
	TriggerEdit = "blur, input changed delay:300ms"
)

// Trigger is the hx-trigger of the field's input.
func (f FieldView) Trigger() string {
	if f.Touched {
		return TriggerEdit
	}
	return TriggerBlur
}

// FormView flattens a form.State for rendering. Touched lists the fields
// that travel back as hidden inputs.
type FormView struct {
	MovieID      int
	Action       string
	SubmitLabel  string
	CancelHref   string
	Fields       map[string]FieldView
	Touched      []string
	Agreed       bool
	RequireTerms bool
	Notice       string
	Valid        bool
	Genres       []string
	Ratings      []string
}

var labels = map[form.Field]string{
	form.Title:         "Movie Title",
	form.Director:      "Director",
	form.Year:          "Year",
	form.Genre:         "Genre",
	form.PosterURL:     "Poster URL",
	form.Synopsis:      "Synopsis",
	form.Duration:      "Duration (minutes)",
	form.Rating:        "Rating",
	form.CommenterName: "Your Name",
	form.CommentBody:   "Your Comment",
}

func NewFormView(schema form.Schema, st form.State, env form.Env) FormView {
	fields := make(map[string]FieldView, len(schema.Fields))
	for _, f := range schema.Fields {
		fields[string(f)] = FieldView{
			Name:    string(f),
			Label:   labels[f],
			Value:   st.Values[f],
			Error:   st.VisibleError(f),
			Touched: st.Touched[f],
		}
	}

	touched := make([]string, 0, len(st.Touched))
	for f, ok := range st.Touched {
		if ok {
			touched = append(touched, string(f))
		}
	}
	slices.Sort(touched)

	return FormView{
		Fields:       fields,
		Touched:      touched,
		Agreed:       st.Agreed,
		RequireTerms: schema.RequireTerms,
		Notice:       st.Notice,
		Valid:        schema.Valid(st, env),
		Genres:       entity.Genres,
		Ratings:      entity.ContentRatings,
	}
}
