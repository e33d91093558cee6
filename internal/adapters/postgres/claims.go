package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

// claimsQuery selects claims with homeowner, provider and project expanded,
// newest first.
func claimsQuery(filter ports.ClaimFilter) sq.SelectBuilder {
	q := psql.Select(
		"c.id", "c.status", "c.claim_amount", "c.claim_reason", "c.created_at",
		"c.resolution_notes", "c.resolution_date",
		"h.id", "h.full_name", "h.email",
		"v.id", "v.full_name", "v.business_name",
		"p.id", "p.title",
	).
		From("guarantee_claims c").
		Join("profiles h ON h.id = c.homeowner_id").
		Join("profiles v ON v.id = c.provider_id").
		Join("projects p ON p.id = c.project_id").
		OrderBy("c.created_at DESC")

	if filter.HomeownerID != "" {
		q = q.Where(sq.Eq{"c.homeowner_id": filter.HomeownerID})
	}
	if filter.ProviderID != "" {
		q = q.Where(sq.Eq{"c.provider_id": filter.ProviderID})
	}
	return q
}

// ClaimRepository
func (db *DB) ListClaims(ctx context.Context, filter ports.ClaimFilter) ([]domain.GuaranteeClaim, error) {
	if filter.HomeownerID == "" && filter.ProviderID == "" {
		return nil, fmt.Errorf("claims filter needs a homeowner or provider id")
	}
	query, args, err := claimsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	var out []domain.GuaranteeClaim
	for rows.Next() {
		var c domain.GuaranteeClaim
		var status string
		if err := rows.Scan(
			&c.ID, &status, &c.ClaimAmount, &c.ClaimReason, &c.CreatedAt,
			&c.ResolutionNotes, &c.ResolutionDate,
			&c.Homeowner.ID, &c.Homeowner.FullName, &c.Homeowner.Email,
			&c.Provider.ID, &c.Provider.FullName, &c.Provider.BusinessName,
			&c.Project.ID, &c.Project.Title,
		); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		c.Status = domain.ClaimStatus(status)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}
