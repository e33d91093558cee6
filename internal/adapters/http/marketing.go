package httpadapter

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog/hlog"

	"homeswerv/internal/domain"
	"homeswerv/internal/metrics"
	"homeswerv/internal/services/pages"
	"homeswerv/internal/services/seo"
	"homeswerv/internal/validation"
)

const contactForm = "contact"

type homeView struct {
	pages.Home
	Contact     map[string]string
	Errors      map[string]string
	ContactSent bool
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK, homeView{
		Home:        pages.HomeContent(),
		ContactSent: r.URL.Query().Get("contact") == "sent",
	})
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, status int, v homeView) {
	s.page(w, r, status, "home.html", Meta{
		Title:       "Home Swerv | Trusted home service providers",
		Description: v.Subheadline,
	}, v)
}

func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "pricing.html", Meta{
		Title:       "Pricing | Home Swerv",
		Description: "Free for homeowners. Simple monthly plans for service providers.",
	}, pages.Plans())
}

type featuresView struct {
	Heading  string
	Intro    string
	Features []pages.Feature
	CTA      pages.Link
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "features.html", Meta{
		Title:       "Features for homeowners | Home Swerv",
		Description: "Vetted providers, a live project board and the Swerv Satisfaction Guarantee.",
	}, featuresView{
		Heading:  "Everything you need to get the job done right",
		Intro:    "From the first quote to the final walkthrough, Home Swerv keeps your project on track.",
		Features: pages.HomeownerFeatures(),
		CTA:      pages.Link{Title: "Start a project", Href: "/signup?type=homeowner"},
	})
}

func (s *Server) handleProviderFeatures(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "features.html", Meta{
		Title:       "Grow your business | Home Swerv for providers",
		Description: "Qualified leads, scheduling and guarantee support for home service professionals.",
	}, featuresView{
		Heading:  "Grow your home services business",
		Intro:    "Win more jobs from homeowners who are ready to hire.",
		Features: pages.ProviderFeatures(),
		CTA:      pages.Link{Title: "See provider plans", Href: "/pricing"},
	})
}

func (s *Server) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "testimonials.html", Meta{
		Title:       "Testimonials | Home Swerv",
		Description: "What homeowners and providers say about Home Swerv.",
	}, pages.TestimonialsContent())
}

type siteMapView struct {
	Groups []pages.LinkGroup
	Pages  []domain.Page
}

func (s *Server) handleSiteMap(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "sitemap.html", Meta{Title: "Site map | Home Swerv"}, siteMapView{
		Groups: pages.SiteMap(),
		Pages:  s.pages.Published(),
	})
}

func (s *Server) handleSitemapXML(w http.ResponseWriter, r *http.Request) {
	body, err := pages.SitemapXML(s.opts.SiteURL, s.pages.Published())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Sitemap render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.htmlError(w, r, http.StatusBadRequest, "Malformed form")
		return
	}
	data := validation.FormData(r.PostForm)
	result := validation.ValidateForm(data, validation.ContactRules())
	metrics.RecordFormValidation(contactForm, result.IsValid)
	if !result.IsValid {
		s.renderHome(w, r, http.StatusUnprocessableEntity, homeView{
			Home:    pages.HomeContent(),
			Contact: data,
			Errors:  result.Errors,
		})
		return
	}

	req := domain.ContactRequest{
		Name:      strings.TrimSpace(data["name"]),
		Email:     strings.TrimSpace(data["email"]),
		Message:   strings.TrimSpace(data["message"]),
		CreatedAt: time.Now().UTC(),
	}
	if phone := strings.TrimSpace(data["phone"]); phone != "" {
		req.Phone = &phone
	}
	id, err := s.contacts.CreateContactRequest(r.Context(), req)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to store contact request")
		s.htmlError(w, r, http.StatusInternalServerError, "We could not send your message. Please try again later.")
		return
	}
	hlog.FromRequest(r).Info().Str("contact_request", id).Msg("Contact request stored")
	http.Redirect(w, r, "/?contact=sent#contact", http.StatusSeeOther)
}

type cmsView struct {
	Page    domain.Page
	Content template.HTML
	Preview bool
}

func (s *Server) handleCMSPage(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		s.htmlError(w, r, http.StatusBadRequest, "Invalid page address")
		return
	}
	page, err := s.pages.Get(r.Context(), slug)
	if errors.Is(err, pages.ErrNotFound) {
		s.htmlError(w, r, http.StatusNotFound, "Page not found")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("slug", slug).Msg("Failed to load page")
		s.htmlError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}
	s.renderCMSPage(w, r, page, false)
}

func (s *Server) renderCMSPage(w http.ResponseWriter, r *http.Request, page domain.Page, preview bool) {
	s.page(w, r, http.StatusOK, "cms.html", pageMeta(page, s.opts.SiteURL, preview), cmsView{
		Page:    page,
		Content: template.HTML(page.Content),
		Preview: preview,
	})
}

// pageMeta maps a CMS page onto the layout head. Custom code is trusted admin
// input and is emitted verbatim.
func pageMeta(p domain.Page, siteURL string, preview bool) Meta {
	snippet := seo.BuildSnippet(p, siteURL)
	m := Meta{
		Title:       snippet.Title,
		Description: snippet.Description,
		Canonical:   strings.TrimRight(siteURL, "/") + "/p/" + p.Slug,
		NoIndex:     preview || !p.Published,
	}
	if p.MetaKeywords != nil {
		m.Keywords = *p.MetaKeywords
	}
	if p.OGImage != nil {
		m.OGImage = *p.OGImage
	}
	if p.CustomCSS != nil {
		m.CustomCSS = template.CSS(*p.CustomCSS)
	}
	if p.CustomJS != nil {
		m.CustomJS = template.JS(*p.CustomJS)
	}
	if p.TrackingCode != nil {
		m.TrackingCode = template.HTML(*p.TrackingCode)
	}
	return m
}

func slugParam(r *http.Request) (string, error) {
	var slug string
	err := runtime.BindStyledParameterWithOptions("simple", "slug", chi.URLParam(r, "slug"), &slug, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Required:      true,
	})
	if err != nil {
		return "", err
	}
	if !validSlug(slug) {
		return "", errors.New("invalid slug")
	}
	return slug, nil
}

func validSlug(slug string) bool {
	if slug == "" || len(slug) > 100 {
		return false
	}
	for _, c := range slug {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
