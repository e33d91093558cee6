package httpadapter

import (
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog/hlog"

	"homeswerv/internal/domain"
	"homeswerv/internal/services/claims"
	"homeswerv/internal/services/kanban"
	"homeswerv/internal/services/profiles"
)

type boardView struct {
	User     domain.User
	Greeting string
	Columns  []kanban.Column
	Unplaced []domain.Project
	ReadOnly bool
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r, s.htmlError)
	if !ok {
		return
	}
	board, err := s.boards.Board(r.Context(), user.ID, user.Role)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("user", user.ID).Msg("Failed to load project board")
		s.htmlError(w, r, http.StatusInternalServerError, "Unable to load your projects. Please try again later.")
		return
	}
	s.page(w, r, http.StatusOK, "projects.html", Meta{Title: "Projects | Home Swerv", NoIndex: true}, boardView{
		User:     user,
		Greeting: profiles.DisplayName(user),
		Columns:  board.Columns(),
		Unplaced: board.Unplaced(),
		ReadOnly: user.Role == domain.RoleAdmin,
	})
}

type claimsPageView struct {
	View    claims.View
	ListURL string
}

// handleClaimsPage renders the claims shell in its loading state; the list
// itself is fetched from /dashboard/claims/list.
func (s *Server) handleClaimsPage(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r.URL.Query())
	if err != nil {
		s.htmlError(w, r, http.StatusBadRequest, "Unknown role")
		return
	}
	q := url.Values{}
	if role != "" {
		q.Set("role", string(role))
	}
	listURL := "/dashboard/claims/list"
	if len(q) > 0 {
		listURL += "?" + q.Encode()
	}
	s.page(w, r, http.StatusOK, "claims.html", Meta{Title: "Guarantee claims | Home Swerv", NoIndex: true}, claimsPageView{
		View:    claims.LoadingView(role),
		ListURL: listURL,
	})
}

func (s *Server) handleClaimsList(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r.URL.Query())
	if err != nil {
		s.fragment(w, r, http.StatusBadRequest, "claims.html", "claims-list", claims.View{State: claims.StateError, Message: claims.ErrorMessage})
		return
	}
	view := s.claims.List(r.Context(), userIDFromContext(r.Context()), role)
	s.fragment(w, r, http.StatusOK, "claims.html", "claims-list", view)
}

// roleParam reads the optional role query parameter. An empty result means
// the caller's profile role applies.
func roleParam(q url.Values) (domain.Role, error) {
	var role string
	if err := runtime.BindQueryParameter("form", true, false, "role", q, &role); err != nil {
		return "", err
	}
	return parseRole(role)
}

func parseRole(raw string) (domain.Role, error) {
	if raw == "" {
		return "", nil
	}
	r := domain.Role(raw)
	if !r.Valid() {
		return "", errUnknownRole
	}
	return r, nil
}
