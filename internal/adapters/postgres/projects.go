package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

func projectsQuery(userID string, role domain.Role) sq.SelectBuilder {
	q := psql.Select(
		"p.id", "p.title", "p.status", "p.description",
		"COALESCE(pr.business_name, pr.full_name)",
		"p.location", "p.budget", "p.progress", "p.start_date",
		"p.hold_reason", "p.completed_date", "p.position",
	).
		From("projects p").
		LeftJoin("profiles pr ON pr.id = p.provider_id").
		OrderBy("p.status", "p.position", "p.created_at")

	switch role {
	case domain.RoleProvider:
		q = q.Where(sq.Eq{"p.provider_id": userID})
	case domain.RoleAdmin:
	default:
		q = q.Where(sq.Eq{"p.homeowner_id": userID})
	}
	return q
}

// ProjectRepository
func (db *DB) ListProjects(ctx context.Context, userID string, role domain.Role) ([]domain.Project, error) {
	query, args, err := projectsQuery(userID, role).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		var status string
		if err := rows.Scan(
			&p.ID, &p.Title, &status, &p.Description,
			&p.Provider,
			&p.Location, &p.Budget, &p.Progress, &p.StartDate,
			&p.HoldReason, &p.CompletedDate, &p.Position,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Status = domain.ProjectStatus(status)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

// SaveColumnOrders rewrites status and position of every project in the
// given columns inside a single transaction. Nothing is committed unless every
// row updates.
func (db *DB) SaveColumnOrders(ctx context.Context, columns []ports.ColumnOrder) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, col := range columns {
		for i, id := range col.ProjectIDs {
			query, args, buildErr := columnUpdate(col.Status, i, id).ToSql()
			if buildErr != nil {
				return buildErr
			}
			tag, execErr := tx.Exec(ctx, query, args...)
			if execErr != nil {
				return fmt.Errorf("update project %s: %w", id, execErr)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("project %s: %w", id, ports.ErrNotFound)
			}
		}
	}
	return nil
}

func columnUpdate(status domain.ProjectStatus, position int, id string) sq.UpdateBuilder {
	return psql.Update("projects").
		Set("status", string(status)).
		Set("position", position).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
}
