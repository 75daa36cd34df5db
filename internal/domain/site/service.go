package site

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) EnsureDefaults(ctx context.Context) error {
	return s.repo.EnsureDefaults(ctx, DefaultPageDetails, DefaultWebsiteTitle)
}

func (s *Service) PageDetails(ctx context.Context) (PageDetails, error) {
	return s.repo.GetPageDetails(ctx)
}

// UpdatePageDetails devuelve filas afectadas (0 si el singleton no existe).
func (s *Service) UpdatePageDetails(ctx context.Context, title, description string) (int64, error) {
	return s.repo.UpdatePageDetails(ctx, strings.TrimSpace(title), strings.TrimSpace(description))
}

func (s *Service) WebsiteTitle(ctx context.Context) (WebsiteTitle, error) {
	return s.repo.GetWebsiteTitle(ctx)
}

func (s *Service) UpdateWebsiteTitle(ctx context.Context, title string) (int64, error) {
	return s.repo.UpdateWebsiteTitle(ctx, strings.TrimSpace(title))
}
