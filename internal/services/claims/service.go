// Package claims builds the guarantee claims list for the dashboard.
package claims

import (
	"context"

	"github.com/rs/zerolog/log"

	"homeswerv/internal/domain"
	"homeswerv/internal/metrics"
	"homeswerv/internal/ports"
)

type Service struct {
	users  ports.UserRepository
	claims ports.ClaimRepository
}

func New(users ports.UserRepository, claims ports.ClaimRepository) *Service {
	return &Service{users: users, claims: claims}
}

// List fetches the current user, then the claims on the side of the
// marketplace that matches role, newest first. An empty role falls back to the
// user's own role. Failures are logged and returned as the error view; there
// is no retry.
func (s *Service) List(ctx context.Context, userID string, role domain.Role) View {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("Failed to fetch current user for claims")
		metrics.RecordClaimsFetch(string(role), "error")
		return errorView(role)
	}
	if role == "" {
		role = user.Role
	}

	var filter ports.ClaimFilter
	switch role {
	case domain.RoleHomeowner:
		filter.HomeownerID = user.ID
	case domain.RoleProvider:
		filter.ProviderID = user.ID
	default:
		log.Warn().Str("user", userID).Str("role", string(role)).Msg("Claims requested for unsupported role")
		metrics.RecordClaimsFetch(string(role), "error")
		return errorView(role)
	}

	rows, err := s.claims.ListClaims(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Str("role", string(role)).Msg("Failed to fetch guarantee claims")
		metrics.RecordClaimsFetch(string(role), "error")
		return errorView(role)
	}
	if len(rows) == 0 {
		metrics.RecordClaimsFetch(string(role), "empty")
		return emptyView(role)
	}

	cards := make([]Card, 0, len(rows))
	for _, c := range rows {
		cards = append(cards, toCard(c, role))
	}
	metrics.RecordClaimsFetch(string(role), "ready")
	return View{Role: role, State: StateReady, Cards: cards}
}
