package httpadapter

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"homeswerv/internal/domain"
	"homeswerv/internal/services/pages"
	"homeswerv/internal/services/seo"
)

type editorView struct {
	Page    domain.Page
	IsNew   bool
	Saved   bool
	Hints   []seo.Hint
	Snippet seo.Snippet
	Limits  struct{ Title, Description int }
}

// loadDraft returns the stored page for slug, or a fresh unpublished page
// when none exists yet.
func (s *Server) loadDraft(w http.ResponseWriter, r *http.Request) (domain.Page, bool, bool) {
	slug, err := slugParam(r)
	if err != nil {
		s.htmlError(w, r, http.StatusBadRequest, "Invalid page address")
		return domain.Page{}, false, false
	}
	page, err := s.pages.GetDraft(r.Context(), slug)
	if errors.Is(err, pages.ErrNotFound) {
		return domain.Page{Slug: slug}, true, true
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("slug", slug).Msg("Failed to load page")
		s.htmlError(w, r, http.StatusInternalServerError, "Something went wrong")
		return domain.Page{}, false, false
	}
	return page, false, true
}

func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	page, isNew, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	s.renderEditor(w, r, http.StatusOK, page, isNew, r.URL.Query().Get("saved") == "1")
}

func (s *Server) renderEditor(w http.ResponseWriter, r *http.Request, status int, page domain.Page, isNew, saved bool) {
	v := editorView{
		Page:    page,
		IsNew:   isNew,
		Saved:   saved,
		Hints:   seo.Check(page),
		Snippet: seo.BuildSnippet(page, s.opts.SiteURL),
	}
	v.Limits.Title = seo.MaxTitleLength
	v.Limits.Description = seo.MaxDescriptionLength
	s.page(w, r, status, "editor.html", Meta{Title: "Edit " + page.Slug + " | Home Swerv admin", NoIndex: true}, v)
}

// handleSavePage binds one form post through both editors and stores the result.
func (s *Server) handleSavePage(w http.ResponseWriter, r *http.Request) {
	page, _, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.htmlError(w, r, http.StatusBadRequest, "Malformed form")
		return
	}

	edited := page
	onChange := func(p domain.Page) { edited = p }
	seo.NewMetaDataEditor(edited, onChange).Bind(r.PostForm)
	seo.NewPreviewEditor(edited, onChange).Bind(r.PostForm)
	edited.Published = r.PostForm.Get("published") == "on"

	if edited.Title == "" {
		s.renderEditor(w, r, http.StatusUnprocessableEntity, edited, page.ID == "", false)
		return
	}
	if err := s.pages.Save(r.Context(), edited); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("slug", edited.Slug).Msg("Failed to save page")
		s.htmlError(w, r, http.StatusInternalServerError, "Unable to save the page. Please try again.")
		return
	}
	http.Redirect(w, r, "/admin/pages/"+edited.Slug+"/edit?saved=1", http.StatusSeeOther)
}

func (s *Server) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	page, isNew, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	if isNew {
		s.htmlError(w, r, http.StatusNotFound, "Page not found")
		return
	}
	s.renderCMSPage(w, r, page, true)
}
