// Package view renders the server-side pages: one shared layout with the
// navigation shell and toast region, a page template per route and a set
// of partials that HTMX requests receive on their own.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"movie-reviews/internal/notify"
	"movie-reviews/pkg/utils"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// SiteName is appended to most document titles.
const SiteName = "Movie Reviews"

// Page is what the layout template receives.
type Page struct {
	Title  string
	Nav    []NavItem
	Toasts []notify.Toast
	Data   any
}

// Renderer holds one template set per page. Every set shares the layout and
// the partials.
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
	log   *zap.Logger
}

var funcs = template.FuncMap{
	"excerpt": utils.Excerpt,
	"runeLen": utf8.RuneCountInString,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006 3:04 PM")
	},
	"ago": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return humanize.Time(t)
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
}

// NewRenderer parses templates/layout.html, templates/partials.html and
// every templates/pages/*.html found in fsys.
func NewRenderer(fsys fs.FS, log *zap.Logger) (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", file, err)
		}
		tmpl, err := clone.ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = tmpl
	}

	return &Renderer{
		base:  base,
		pages: pages,
		log:   log.With(zap.String("component", "view")),
	}, nil
}

// Page renders a full document through the layout.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.log.Error("Unknown page template", zap.String("page", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	r.write(w, status, name, func(buf *bytes.Buffer) error {
		return tmpl.ExecuteTemplate(buf, "layout", page)
	})
}

// Partial renders one named partial without the layout.
func (r *Renderer) Partial(w http.ResponseWriter, status int, name string, data any) {
	r.write(w, status, name, func(buf *bytes.Buffer) error {
		return r.base.ExecuteTemplate(buf, name, data)
	})
}

func (r *Renderer) write(w http.ResponseWriter, status int, name string, exec func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := exec(&buf); err != nil {
		r.log.Error("Failed to render template",
			zap.Error(err),
			zap.String("template", name),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Title builds "<prefix> - Movie Reviews".
func Title(prefix string) string {
	return prefix + " - " + SiteName
}
