package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	users ports.UserRepository
}

func New(users ports.UserRepository) *Service { return &Service{users: users} }

// Current loads the profile of a signed-in user.
func (s *Service) Current(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	return user, nil
}

// DisplayName is the name shown in the dashboard header: the full name when
// set, otherwise the local part of the email.
func DisplayName(u domain.User) string {
	if u.FullName != nil && strings.TrimSpace(*u.FullName) != "" {
		return strings.TrimSpace(*u.FullName)
	}
	if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
		return local
	}
	return "there"
}
