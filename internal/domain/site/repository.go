package site

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

type Repository interface {
	GetPageDetails(ctx context.Context) (PageDetails, error)
	UpdatePageDetails(ctx context.Context, title, description string) (int64, error)

	GetWebsiteTitle(ctx context.Context) (WebsiteTitle, error)
	UpdateWebsiteTitle(ctx context.Context, title string) (int64, error)

	// EnsureDefaults inserta cada singleton solo si falta.
	EnsureDefaults(ctx context.Context, page PageDetails, title WebsiteTitle) error
}
