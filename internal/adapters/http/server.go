package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homeswerv/internal/domain"
	"homeswerv/internal/logging"
	"homeswerv/internal/metrics"
	"homeswerv/internal/ports"
	"homeswerv/internal/services/claims"
	"homeswerv/internal/services/kanban"
)

// Boards is the kanban service as seen by the handlers.
type Boards interface {
	Board(ctx context.Context, userID string, role domain.Role) (*kanban.Board, error)
	Move(ctx context.Context, userID string, role domain.Role, drag kanban.DragResult) (*kanban.Board, error)
}

// Claims is the claims list service as seen by the handlers.
type Claims interface {
	List(ctx context.Context, userID string, role domain.Role) claims.View
}

// Pages is the CMS page service as seen by the handlers.
type Pages interface {
	Get(ctx context.Context, slug string) (domain.Page, error)
	GetDraft(ctx context.Context, slug string) (domain.Page, error)
	Save(ctx context.Context, page domain.Page) error
	Published() []domain.Page
}

// Profiles resolves the signed-in user.
type Profiles interface {
	Current(ctx context.Context, id string) (domain.User, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	SiteURL   string
	JWTSecret []byte
}

type Server struct {
	boards   Boards
	claims   Claims
	pages    Pages
	profiles Profiles
	contacts ports.ContactRepository
	db       Pinger

	opts  Options
	views *renderer
}

func New(boards Boards, claimsSvc Claims, pages Pages, profiles Profiles, contacts ports.ContactRepository, db Pinger, opts Options) (*Server, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Server{
		boards:   boards,
		claims:   claimsSvc,
		pages:    pages,
		profiles: profiles,
		contacts: contacts,
		db:       db,
		opts:     opts,
		views:    views,
	}, nil
}

// Routes returns the full router. HTML pages are plain chi routes; the JSON
// API and /healthz come from the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware)
	r.Use(metrics.Middleware)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", s.handleHome)
	r.Get("/pricing", s.handlePricing)
	r.Get("/features", s.handleFeatures)
	r.Get("/features/providers", s.handleProviderFeatures)
	r.Get("/testimonials", s.handleTestimonials)
	r.Get("/sitemap", s.handleSiteMap)
	r.Get("/sitemap.xml", s.handleSitemapXML)
	r.Post("/contact", s.handleContact)
	r.Get("/p/{slug}", s.handleCMSPage)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(s.authenticate(s.htmlError))
		r.Get("/projects", s.handleProjects)
		r.Get("/claims", s.handleClaimsPage)
		r.Get("/claims/list", s.handleClaimsList)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.authenticate(s.htmlError))
		r.Use(s.requireAdmin)
		r.Get("/pages/{slug}/edit", s.handleEditPage)
		r.Post("/pages/{slug}", s.handleSavePage)
		r.Get("/pages/{slug}/preview", s.handlePreviewPage)
	})

	s.mountAPI(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.htmlError(w, r, http.StatusNotFound, "Page not found")
	})
	return r
}
