package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

var pageColumns = []string{
	"id", "slug", "title", "meta_title", "meta_description", "meta_keywords",
	"og_image", "content", "sections", "custom_css", "custom_js", "tracking_code",
	"published", "updated_at",
}

func scanPage(row pgx.Row) (domain.Page, error) {
	var p domain.Page
	var sections []byte
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.MetaTitle, &p.MetaDescription, &p.MetaKeywords,
		&p.OGImage, &p.Content, &sections, &p.CustomCSS, &p.CustomJS, &p.TrackingCode,
		&p.Published, &p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return p, fmt.Errorf("decode sections of %s: %w", p.Slug, err)
		}
	}
	return p, nil
}

// PageRepository
func (db *DB) GetPage(ctx context.Context, slug string) (domain.Page, error) {
	query, args, err := psql.Select(pageColumns...).From("pages").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return domain.Page{}, err
	}
	p, err := scanPage(db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Page{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Page{}, fmt.Errorf("query page: %w", err)
	}
	return p, nil
}

func (db *DB) ListPublished(ctx context.Context) ([]domain.Page, error) {
	query, args, err := psql.Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"published": true}).
		OrderBy("slug").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var out []domain.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

// SavePage upserts by slug.
func (db *DB) SavePage(ctx context.Context, page domain.Page) error {
	query, args, err := pageUpsert(page)
	if err != nil {
		return err
	}
	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert page: %w", err)
	}
	return nil
}

func pageUpsert(page domain.Page) (string, []interface{}, error) {
	sections := page.Sections
	if sections == nil {
		sections = []domain.Section{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return "", nil, fmt.Errorf("encode sections: %w", err)
	}
	return psql.Insert("pages").
		Columns(
			"slug", "title", "meta_title", "meta_description", "meta_keywords", "og_image",
			"content", "sections", "custom_css", "custom_js", "tracking_code", "published",
		).
		Values(
			page.Slug, page.Title, page.MetaTitle, page.MetaDescription, page.MetaKeywords, page.OGImage,
			page.Content, string(raw), page.CustomCSS, page.CustomJS, page.TrackingCode, page.Published,
		).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			meta_keywords = EXCLUDED.meta_keywords,
			og_image = EXCLUDED.og_image,
			content = EXCLUDED.content,
			sections = EXCLUDED.sections,
			custom_css = EXCLUDED.custom_css,
			custom_js = EXCLUDED.custom_js,
			tracking_code = EXCLUDED.tracking_code,
			published = EXCLUDED.published,
			updated_at = now()`).
		ToSql()
}
