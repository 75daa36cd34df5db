package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
		`SELECT id, title, description FROM page_details WHERE id = ?`, site.SingletonID,
	).Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return site.PageDetails{}, site.ErrNotFound
		}
		return site.PageDetails{}, fmt.Errorf("get page details: %w", err)
	}
	return p, nil
}

func (r *SiteRepo) UpdatePageDetails(ctx context.Context, title, description string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE page_details SET title = ?, description = ? WHERE id = ?`,
		title, description, site.SingletonID)
	if err != nil {
		return 0, fmt.Errorf("update page details: %w", err)
	}
	return res.RowsAffected()
}

func (r *SiteRepo) GetWebsiteTitle(ctx context.Context) (site.WebsiteTitle, error) {
	var t site.WebsiteTitle
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title FROM website_title WHERE id = ?`, site.SingletonID,
	).Scan(&t.ID, &t.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return site.WebsiteTitle{}, site.ErrNotFound
		}
		return site.WebsiteTitle{}, fmt.Errorf("get website title: %w", err)
	}
	return t, nil
}

func (r *SiteRepo) UpdateWebsiteTitle(ctx context.Context, title string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE website_title SET title = ? WHERE id = ?`, title, site.SingletonID)
	if err != nil {
		return 0, fmt.Errorf("update website title: %w", err)
	}
	return res.RowsAffected()
}

func (r *SiteRepo) EnsureDefaults(ctx context.Context, page site.PageDetails, title site.WebsiteTitle) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO page_details (id, title, description) VALUES (?, ?, ?)`,
		site.SingletonID, page.Title, page.Description,
	); err != nil {
		return fmt.Errorf("seed page details: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO website_title (id, title) VALUES (?, ?)`,
		site.SingletonID, title.Title,
	); err != nil {
		return fmt.Errorf("seed website title: %w", err)
	}
	return nil
}

var _ site.Repository = (*SiteRepo)(nil)
