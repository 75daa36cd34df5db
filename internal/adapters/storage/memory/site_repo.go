package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/site"
)

type siteRepo struct {
	mu    sync.RWMutex
	page  *site.PageDetails
	title *site.WebsiteTitle
}

func NewSiteRepo() site.Repository {
	return &siteRepo{}
}

func (r *siteRepo) GetPageDetails(ctx context.Context) (site.PageDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.page == nil {
		return site.PageDetails{}, site.ErrNotFound
	}
	return *r.page, nil
}

func (r *siteRepo) UpdatePageDetails(ctx context.Context, title, description string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.page == nil {
		return 0, nil
	}
	r.page.Title = title
	r.page.Description = description
	return 1, nil
}

func (r *siteRepo) GetWebsiteTitle(ctx context.Context) (site.WebsiteTitle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.title == nil {
		return site.WebsiteTitle{}, site.ErrNotFound
	}
	return *r.title, nil
}

func (r *siteRepo) UpdateWebsiteTitle(ctx context.Context, title string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.title == nil {
		return 0, nil
	}
	r.title.Title = title
	return 1, nil
}

func (r *siteRepo) EnsureDefaults(ctx context.Context, page site.PageDetails, title site.WebsiteTitle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.page == nil {
		p := page
		p.ID = site.SingletonID
		r.page = &p
	}
	if r.title == nil {
		t := title
		t.ID = site.SingletonID
		r.title = &t
	}
	return nil
}
