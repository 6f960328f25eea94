package form

import (
	"maps"
	"net/url"
)

// Phase is the lifecycle position of one form instance.
type Phase int

const (
	Pristine Phase = iota
	Editing
	Submitting
	Submitted
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pristine:
		return "pristine"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TermsNotice is shown when a form that requires agreement is submitted
// without it.
const TermsNotice = "Please agree to the terms and conditions"

// TouchedKey is the form key carrying the names of touched fields.
const TouchedKey = "touched"

// TermsKey is the checkbox carrying the terms agreement.
const TermsKey = "agreedToTerms"

// Schema describes one kind of form.
type Schema struct {
	Rules        Rules
	Fields       []Field // render and submit order
	Defaults     map[Field]string
	RequireTerms bool
	FixNotice    string
}

var MovieSchema = Schema{
	Rules:        MovieRules,
	Fields:       []Field{Title, Director, Year, Duration, Genre, Rating, PosterURL, Synopsis},
	Defaults:     map[Field]string{Rating: "G"},
	RequireTerms: true,
	FixNotice:    "Please fix all errors before submitting",
}

var CommentSchema = Schema{
	Rules:     CommentRules,
	Fields:    []Field{CommenterName, CommentBody},
	FixNotice: "Please fix all errors",
}

// State is an immutable snapshot; Reduce always returns a fresh copy.
type State struct {
	Phase   Phase
	Values  map[Field]string
	Touched map[Field]bool
	Errors  map[Field]string
	Agreed  bool
	Notice  string
	ID      int   // set once Submitted
	Failure error // store failure that sent the form back to Rejected
}

// Event is one of Changed, Blurred, TermsToggled, Submit, SubmitFailed or
// SubmitSucceeded.
type Event interface {
	event()
}

type Changed struct {
	Field Field
	Value string
}

type Blurred struct {
	Field Field
}

type TermsToggled struct {
	Agreed bool
}

type Submit struct{}

type SubmitFailed struct {
	Err error
}

type SubmitSucceeded struct {
	ID int
}

func (Changed) event()         {}
func (Blurred) event()         {}
func (TermsToggled) event()    {}
func (Submit) event()          {}
func (SubmitFailed) event()    {}
func (SubmitSucceeded) event() {}

// New returns a pristine form holding initial merged over the defaults.
func (s Schema) New(initial map[Field]string) State {
	values := make(map[Field]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f] = s.Defaults[f]
	}
	for f, v := range initial {
		values[f] = v
	}
	return State{
		Phase:   Pristine,
		Values:  values,
		Touched: map[Field]bool{},
		Errors:  map[Field]string{},
	}
}

func (st State) clone() State {
	next := st
	next.Values = maps.Clone(st.Values)
	next.Touched = maps.Clone(st.Touched)
	next.Errors = maps.Clone(st.Errors)
	if next.Values == nil {
		next.Values = map[Field]string{}
	}
	if next.Touched == nil {
		next.Touched = map[Field]bool{}
	}
	if next.Errors == nil {
		next.Errors = map[Field]string{}
	}
	return next
}

func (st *State) setError(field Field, msg string) {
	if msg == "" {
		delete(st.Errors, field)
		return
	}
	st.Errors[field] = msg
}

func editable(p Phase) bool {
	return p == Pristine || p == Editing || p == Rejected
}

// Reduce applies ev to prev and returns the next state. prev is never
// modified.
func (s Schema) Reduce(prev State, ev Event, env Env) State {
	switch e := ev.(type) {
	case Changed:
		if !editable(prev.Phase) {
			return prev
		}
		next := prev.clone()
		next.Phase = Editing
		next.Values[e.Field] = e.Value
		if next.Touched[e.Field] {
			next.setError(e.Field, s.Rules.Validate(e.Field, e.Value, env))
		}
		return next

	case Blurred:
		if !editable(prev.Phase) {
			return prev
		}
		next := prev.clone()
		next.Phase = Editing
		next.Touched[e.Field] = true
		next.setError(e.Field, s.Rules.Validate(e.Field, next.Values[e.Field], env))
		return next

	case TermsToggled:
		if !editable(prev.Phase) {
			return prev
		}
		next := prev.clone()
		next.Phase = Editing
		next.Agreed = e.Agreed
		return next

	case Submit:
		if !editable(prev.Phase) {
			return prev
		}
		next := prev.clone()
		next.Failure = nil
		for _, f := range s.Fields {
			next.Touched[f] = true
		}
		next.Errors = s.Rules.ValidateAll(next.Values, env)
		switch {
		case s.RequireTerms && !next.Agreed:
			next.Phase = Rejected
			next.Notice = TermsNotice
		case len(next.Errors) > 0:
			next.Phase = Rejected
			next.Notice = s.FixNotice
		default:
			next.Phase = Submitting
			next.Notice = ""
		}
		return next

	case SubmitFailed:
		if prev.Phase != Submitting {
			return prev
		}
		next := prev.clone()
		next.Phase = Rejected
		next.Failure = e.Err
		return next

	case SubmitSucceeded:
		if prev.Phase != Submitting {
			return prev
		}
		next := prev.clone()
		next.Phase = Submitted
		next.ID = e.ID
		return next
	}

	return prev
}

// Valid is the submit gate: every rule passes and, where required, the
// terms are agreed. Touched state does not matter.
func (s Schema) Valid(st State, env Env) bool {
	if s.RequireTerms && !st.Agreed {
		return false
	}
	for _, f := range s.Fields {
		if s.Rules.Validate(f, st.Values[f], env) != "" {
			return false
		}
	}
	return true
}

// VisibleError is the message to render next to field, if any.
func (st State) VisibleError(field Field) string {
	if !st.Touched[field] {
		return ""
	}
	return st.Errors[field]
}

// Replay rebuilds the state of a form posted back by the browser: values
// are applied first, then the touched fields are blurred, then the terms.
func (s Schema) Replay(posted url.Values, env Env) State {
	st := s.New(nil)
	for _, f := range s.Fields {
		if v, ok := posted[string(f)]; ok && len(v) > 0 {
			st = s.Reduce(st, Changed{Field: f, Value: v[0]}, env)
		}
	}
	for _, name := range posted[TouchedKey] {
		f := Field(name)
		if _, known := s.Rules[f]; known {
			st = s.Reduce(st, Blurred{Field: f}, env)
		}
	}
	if s.RequireTerms {
		st = s.Reduce(st, TermsToggled{Agreed: posted.Get(TermsKey) != ""}, env)
	}
	return st
}
