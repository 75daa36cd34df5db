package site

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	page  *PageDetails
	title *WebsiteTitle
}

func (r *testRepo) GetPageDetails(ctx context.Context) (PageDetails, error) {
	if r.page == nil {
		return PageDetails{}, ErrNotFound
	}
	return *r.page, nil
}

func (r *testRepo) UpdatePageDetails(ctx context.Context, title, description string) (int64, error) {
	if r.page == nil {
		return 0, nil
	}
	r.page.Title, r.page.Description = title, description
	return 1, nil
}

func (r *testRepo) GetWebsiteTitle(ctx context.Context) (WebsiteTitle, error) {
	if r.title == nil {
		return WebsiteTitle{}, ErrNotFound
	}
	return *r.title, nil
}

func (r *testRepo) UpdateWebsiteTitle(ctx context.Context, title string) (int64, error) {
	if r.title == nil {
		return 0, nil
	}
	r.title.Title = title
	return 1, nil
}

func (r *testRepo) EnsureDefaults(ctx context.Context, page PageDetails, title WebsiteTitle) error {
	if r.page == nil {
		r.page = &page
	}
	if r.title == nil {
		r.title = &title
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_EnsureDefaults(t *testing.T) {
	svc := NewService(&testRepo{})

	if _, err := svc.PageDetails(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before defaults, got %v", err)
	}
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}

	p, err := svc.PageDetails(context.Background())
	if err != nil || p != DefaultPageDetails {
		t.Fatalf("unexpected page details %+v err=%v", p, err)
	}
	ti, err := svc.WebsiteTitle(context.Background())
	if err != nil || ti != DefaultWebsiteTitle {
		t.Fatalf("unexpected title %+v err=%v", ti, err)
	}
}

func TestService_UpdatesTrimInput(t *testing.T) {
	svc := NewService(&testRepo{})
	_ = svc.EnsureDefaults(context.Background())

	n, err := svc.UpdatePageDetails(context.Background(), "  Hello ", " world ")
	if err != nil || n != 1 {
		t.Fatalf("update page details: n=%d err=%v", n, err)
	}
	p, _ := svc.PageDetails(context.Background())
	if p.Title != "Hello" || p.Description != "world" {
		t.Fatalf("unexpected page details %+v", p)
	}

	n, err = svc.UpdateWebsiteTitle(context.Background(), " Paws ")
	if err != nil || n != 1 {
		t.Fatalf("update title: n=%d err=%v", n, err)
	}
	ti, _ := svc.WebsiteTitle(context.Background())
	if ti.Title != "Paws" || ti.ID != SingletonID {
		t.Fatalf("unexpected title %+v", ti)
	}
}

func TestService_UpdateWithoutRowReportsZero(t *testing.T) {
	svc := NewService(&testRepo{})

	n, err := svc.UpdateWebsiteTitle(context.Background(), "X")
	if err != nil || n != 0 {
		t.Fatalf("expected n=0, got n=%d err=%v", n, err)
	}
}
