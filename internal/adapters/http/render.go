package httpadapter

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/hlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"homeswerv/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "layout.html"

// Meta fills the <head> of the layout.
type Meta struct {
	Title        string
	Description  string
	Keywords     string
	OGImage      string
	Canonical    string
	CustomCSS    template.CSS
	CustomJS     template.JS
	TrackingCode template.HTML
	NoIndex      bool
}

type layoutData struct {
	Meta Meta
	Path string
	Body any
}

// renderer holds one template set per page, each a clone of the layout.
type renderer struct {
	pages map[string]*template.Template
}

var printer = message.NewPrinter(language.AmericanEnglish)

var templateFuncs = template.FuncMap{
	"deref": func(s *string, def string) string {
		if s == nil || strings.TrimSpace(*s) == "" {
			return def
		}
		return *s
	},
	"money": func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		return printer.Sprintf("$%.0f", *v)
	},
	"date": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "—"
		}
		return t.Format("Jan 2, 2006")
	},
	"percent": func(v *int) int {
		if v == nil {
			return 0
		}
		return min(max(*v, 0), 100)
	},
	"statusTitle": func(s domain.ProjectStatus) string { return s.Title() },
	"unsafeHTML":  func(s string) template.HTML { return template.HTML(s) },
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
			}
			m[k] = kv[i+1]
		}
		return m, nil
	},
	"stars": func(n int) string {
		return strings.Repeat("★", n) + strings.Repeat("☆", max(5-n, 0))
	},
}

func newRenderer() (*renderer, error) {
	layout, err := template.New(layoutTemplate).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	rd := &renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		base := path.Base(name)
		if base == layoutTemplate {
			continue
		}
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		rd.pages[base] = t
	}
	return rd, nil
}

// page renders name inside the layout.
func (s *Server) page(w http.ResponseWriter, r *http.Request, status int, name string, meta Meta, body any) {
	if meta.Canonical == "" {
		meta.Canonical = strings.TrimRight(s.opts.SiteURL, "/") + r.URL.Path
	}
	s.execute(w, r, status, name, layoutTemplate, layoutData{Meta: meta, Path: r.URL.Path, Body: body})
}

// fragment renders a named block of a page template without the layout.
func (s *Server) fragment(w http.ResponseWriter, r *http.Request, status int, name, block string, body any) {
	s.execute(w, r, status, name, block, body)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, status int, name, entry string, data any) {
	t, ok := s.views.pages[name]
	if !ok {
		hlog.FromRequest(r).Error().Str("template", name).Msg("Unknown template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	// Render to a buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, entry, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("Template render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorPage struct {
	Status  int
	Message string
}

func (s *Server) htmlError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.page(w, r, status, "error.html", Meta{Title: http.StatusText(status), NoIndex: true}, errorPage{Status: status, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, _ *http.Request, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
