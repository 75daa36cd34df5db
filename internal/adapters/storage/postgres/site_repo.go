package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption/internal/domain/site"
)

type SiteRepo struct {
	db *sql.DB
}

func NewSiteRepo(db *sql.DB) *SiteRepo {
	return &SiteRepo{db: db}
}

func (r *SiteRepo) GetPageDetails(ctx context.Context) (site.PageDetails, error) {
	var p site.PageDetails
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description FROM page_details WHERE id = $1`, site.SingletonID,
	).Scan(&p.ID, &p.Title, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return site.PageDetails{}, site.ErrNotFound
	}
	return p, err
}

func (r *SiteRepo) UpdatePageDetails(ctx context.Context, title, description string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE page_details SET title = $2, description = $3 WHERE id = $1`,
		site.SingletonID, title, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SiteRepo) GetWebsiteTitle(ctx context.Context) (site.WebsiteTitle, error) {
	var t site.WebsiteTitle
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title FROM website_title WHERE id = $1`, site.SingletonID,
	).Scan(&t.ID, &t.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return site.WebsiteTitle{}, site.ErrNotFound
	}
	return t, err
}

func (r *SiteRepo) UpdateWebsiteTitle(ctx context.Context, title string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE website_title SET title = $2 WHERE id = $1`, site.SingletonID, title)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SiteRepo) EnsureDefaults(ctx context.Context, page site.PageDetails, title site.WebsiteTitle) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO page_details (id, title, description) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, site.SingletonID, page.Title, page.Description); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO website_title (id, title) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, site.SingletonID, title.Title)
	return err
}

var _ site.Repository = (*SiteRepo)(nil)
