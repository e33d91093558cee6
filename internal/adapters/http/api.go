package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"homeswerv/internal/api"
	"homeswerv/internal/domain"
	"homeswerv/internal/metrics"
	"homeswerv/internal/services/claims"
	"homeswerv/internal/services/kanban"
	"homeswerv/internal/services/profiles"
	"homeswerv/internal/validation"
)

// Server implements the generated StrictServerInterface for the JSON API.
var _ api.StrictServerInterface = (*Server)(nil)

var errUnknownRole = errors.New("unknown role")

const maxBodyBytes = 1 << 20

// mountAPI mounts the generated JSON routes on r. Operations that declare a
// security requirement go through requireSession.
func (s *Server) mountAPI(r chi.Router) {
	strict := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  apiRequestError,
		ResponseErrorHandlerFunc: apiResponseError,
	})
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.requireSession, limitBody},
		ErrorHandlerFunc: apiRequestError,
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	authed := s.authenticate(jsonError)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(api.BearerAuthScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}
		authed.ServeHTTP(w, r)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func apiRequestError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Debug().Err(err).Msg("Rejected API request")
	jsonError(w, r, http.StatusBadRequest, "malformed request")
}

func apiResponseError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("API handler failed")
	jsonError(w, r, http.StatusInternalServerError, "Something went wrong")
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			return api.GetHealthz503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

// MoveProject applies a drag result. A dropped-outside drag is a no-op and
// returns the unchanged board.
func (s *Server) MoveProject(ctx context.Context, req api.MoveProjectRequestObject) (api.MoveProjectResponseObject, error) {
	if req.Body == nil || req.Body.DraggableId == "" {
		return api.MoveProject400JSONResponse{Error: "invalid drag result"}, nil
	}

	user, err := s.profiles.Current(ctx, userIDFromContext(ctx))
	if errors.Is(err, profiles.ErrNotFound) {
		return api.MoveProject401JSONResponse{Error: "Unknown user"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.Role == domain.RoleAdmin {
		return api.MoveProject403JSONResponse{Error: "board is read-only for administrators"}, nil
	}

	board, err := s.boards.Move(ctx, user.ID, user.Role, toDragResult(*req.Body))
	switch {
	case err == nil:
		return api.MoveProject200JSONResponse(toBoard(board, "")), nil
	case errors.Is(err, kanban.ErrInvalidColumn), errors.Is(err, kanban.ErrInvalidIndex), errors.Is(err, kanban.ErrProjectMismatch):
		return api.MoveProject422JSONResponse(toBoard(board, err.Error())), nil
	case board != nil:
		// persisting failed and the board was rolled back
		return api.MoveProject500JSONResponse(toBoard(board, "unable to save the new order")), nil
	default:
		return nil, fmt.Errorf("load project board: %w", err)
	}
}

func (s *Server) ListClaims(ctx context.Context, req api.ListClaimsRequestObject) (api.ListClaimsResponseObject, error) {
	var raw string
	if req.Params.Role != nil {
		raw = *req.Params.Role
	}
	role, err := parseRole(raw)
	if err != nil {
		return api.ListClaims400JSONResponse{Error: "role must be homeowner or provider"}, nil
	}

	view := s.claims.List(ctx, userIDFromContext(ctx), role)
	if view.State == claims.StateError {
		return api.ListClaims500JSONResponse{Error: view.Message}, nil
	}
	return api.ListClaims200JSONResponse(toClaimsView(view)), nil
}

var formRules = map[string]func() validation.Rules{
	"contact": validation.ContactRules,
	"signup":  validation.SignupRules,
}

// ValidateForm runs a named rule set against a JSON object of strings and
// returns per-field errors.
func (s *Server) ValidateForm(ctx context.Context, req api.ValidateFormRequestObject) (api.ValidateFormResponseObject, error) {
	rules, ok := formRules[req.Form]
	if !ok {
		return api.ValidateForm404JSONResponse{Error: "unknown form"}, nil
	}
	var data map[string]string
	if req.Body != nil {
		data = *req.Body
	}

	result := validation.ValidateForm(data, rules())
	metrics.RecordFormValidation(req.Form, result.IsValid)
	out := api.ValidationResult{IsValid: result.IsValid, Errors: result.Errors}
	if !result.IsValid {
		return api.ValidateForm422JSONResponse(out), nil
	}
	return api.ValidateForm200JSONResponse(out), nil
}

func toDragResult(d api.DragResult) kanban.DragResult {
	out := kanban.DragResult{
		ItemID: d.DraggableId,
		Source: kanban.Location{ColumnID: d.Source.DroppableId, Index: d.Source.Index},
	}
	if d.Destination != nil {
		out.Destination = &kanban.Location{ColumnID: d.Destination.DroppableId, Index: d.Destination.Index}
	}
	return out
}

func toBoard(b *kanban.Board, msg string) api.Board {
	out := api.Board{Columns: []api.Column{}}
	if msg != "" {
		out.Error = &msg
	}
	if b == nil {
		return out
	}
	for _, c := range b.Columns() {
		items := make([]api.Project, 0, len(c.Items))
		for _, p := range c.Items {
			items = append(items, toProject(p))
		}
		out.Columns = append(out.Columns, api.Column{Id: string(c.ID), Title: c.Title, Items: items})
	}
	return out
}

func toProject(p domain.Project) api.Project {
	return api.Project{
		Id:            p.ID,
		Title:         p.Title,
		Status:        string(p.Status),
		Description:   p.Description,
		Provider:      p.Provider,
		Location:      p.Location,
		Budget:        p.Budget,
		Progress:      p.Progress,
		StartDate:     p.StartDate,
		HoldReason:    p.HoldReason,
		CompletedDate: p.CompletedDate,
		Position:      p.Position,
	}
}

func toClaimsView(v claims.View) api.ClaimsView {
	out := api.ClaimsView{
		Role:   string(v.Role),
		State:  string(v.State),
		Claims: make([]api.ClaimCard, 0, len(v.Cards)),
	}
	if v.Message != "" {
		out.Message = &v.Message
	}
	for _, c := range v.Cards {
		c := c
		card := api.ClaimCard{
			Id:                c.ID,
			Status:            string(c.Status),
			Badge:             api.ClaimBadge{Label: c.Badge.Label, Tone: c.Badge.Tone, Icon: c.Badge.Icon},
			Amount:            c.Amount,
			Reason:            c.Reason,
			FiledOn:           c.FiledOn,
			ProjectTitle:      c.ProjectTitle,
			CounterpartyLabel: c.CounterpartyLabel,
			CounterpartyName:  c.CounterpartyName,
		}
		if c.ResolutionNotes != "" {
			card.ResolutionNotes = &c.ResolutionNotes
		}
		if c.ResolvedOn != "" {
			card.ResolvedOn = &c.ResolvedOn
		}
		out.Claims = append(out.Claims, card)
	}
	return out
}
