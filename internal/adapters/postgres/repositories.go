package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

var (
	_ ports.UserRepository    = (*DB)(nil)
	_ ports.ClaimRepository   = (*DB)(nil)
	_ ports.ProjectRepository = (*DB)(nil)
	_ ports.ProjectWriter     = (*DB)(nil)
	_ ports.PageRepository    = (*DB)(nil)
	_ ports.ContactRepository = (*DB)(nil)
)

// UserRepository
func (db *DB) GetUser(ctx context.Context, id string) (domain.User, error) {
	query, args, err := psql.Select("id", "email", "full_name", "user_type").
		From("profiles").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var u domain.User
	var role string
	err = db.Pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Email, &u.FullName, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("query profile: %w", err)
	}
	u.Role = domain.Role(role)
	return u, nil
}

// ContactRepository
func (db *DB) CreateContactRequest(ctx context.Context, req domain.ContactRequest) (string, error) {
	query, args, err := psql.Insert("contact_requests").
		Columns("name", "email", "phone", "message").
		Values(req.Name, req.Email, req.Phone, req.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", err
	}
	var id string
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("insert contact request: %w", err)
	}
	return id, nil
}
