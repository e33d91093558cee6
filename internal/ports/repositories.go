package ports

import (
	"context"

	"homeswerv/internal/domain"
)

// UserRepository resolves the signed-in user's profile.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// ClaimFilter selects claims by the side of the marketplace they belong to.
// Exactly one id is expected to be set.
type ClaimFilter struct {
	HomeownerID string
	ProviderID  string
}

// ClaimRepository lists guarantee claims with homeowner, provider and project expanded, newest first.
type ClaimRepository interface {
	ListClaims(ctx context.Context, filter ClaimFilter) ([]domain.GuaranteeClaim, error)
}

// ProjectRepository lists the projects a user takes part in, ordered by status then position.
type ProjectRepository interface {
	ListProjects(ctx context.Context, userID string, role domain.Role) ([]domain.Project, error)
}

// ColumnOrder is the full order of one kanban column after a move.
type ColumnOrder struct {
	Status     domain.ProjectStatus
	ProjectIDs []string
}

// ProjectWriter persists the order of the columns a move touched. Every listed
// project gets its column's status and its index as position. The write is
// all or nothing.
type ProjectWriter interface {
	SaveColumnOrders(ctx context.Context, columns []ColumnOrder) error
}

// PageRepository stores CMS pages.
type PageRepository interface {
	GetPage(ctx context.Context, slug string) (domain.Page, error)
	ListPublished(ctx context.Context) ([]domain.Page, error)
	SavePage(ctx context.Context, page domain.Page) error
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	CreateContactRequest(ctx context.Context, req domain.ContactRequest) (id string, err error)
}
