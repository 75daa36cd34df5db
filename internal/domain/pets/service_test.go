package pets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/ports/media"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	nextID int64

	createErr error
	adoptErr  error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}, nextID: 1}
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, p Pet) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (int64, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.Name, p.Description = in.Name, in.Description
	if in.Image != nil {
		p.Image = *in.Image
	}
	r.byID[id] = p
	return 1, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.byID = map[int64]Pet{}
	r.nextID = 1
	return nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

func (r *testRepo) Adopt(ctx context.Context, id int64, name, ip string) error {
	if r.adoptErr != nil {
		return r.adoptErr
	}
	for _, p := range r.byID {
		if p.AdopterIP != nil && *p.AdopterIP == ip {
			return ErrAlreadyAdopted
		}
	}
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if p.IsAdopted() {
		return ErrPetUnavailable
	}
	p.AdoptedBy, p.AdopterIP = &name, &ip
	r.byID[id] = p
	return nil
}

func (r *testRepo) Unadopt(ctx context.Context, id int64) (int64, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.AdoptedBy, p.AdopterIP = nil, nil
	r.byID[id] = p
	return 1, nil
}

func (r *testRepo) HasAdopted(ctx context.Context, ip string) (bool, error) {
	for _, p := range r.byID {
		if p.AdopterIP != nil && *p.AdopterIP == ip {
			return true, nil
		}
	}
	return false, nil
}

type testImages struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *testImages) Save(ctx context.Context, up media.Upload) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if _, err := io.ReadAll(up.Content); err != nil {
		return "", err
	}
	ref := "/images/" + up.Filename
	s.saved = append(s.saved, ref)
	return ref, nil
}

func (s *testImages) Delete(ctx context.Context, ref string) error {
	s.deleted = append(s.deleted, ref)
	return nil
}

type testNotifier struct {
	got []Adoption
}

func (n *testNotifier) NotifyAdoption(ctx context.Context, a Adoption) {
	n.got = append(n.got, a)
}

func upload(name string) *media.Upload {
	return &media.Upload{Filename: name, Content: strings.NewReader("img")}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SavesImageAndInserts(t *testing.T) {
	repo, images := newTestRepo(), &testImages{}
	svc := NewService(repo, images, nil)

	id, err := svc.Create(context.Background(), CreateInput{
		Name:        "  Rex ",
		Description: " good dog ",
		Image:       upload("rex.jpg"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	p, _ := repo.GetByID(context.Background(), id)
	if p.Name != "Rex" || p.Description != "good dog" || p.Image != "/images/rex.jpg" {
		t.Fatalf("unexpected pet %+v", p)
	}
}

func TestService_Create_RequiresNameAndImage(t *testing.T) {
	svc := NewService(newTestRepo(), &testImages{}, nil)

	if _, err := svc.Create(context.Background(), CreateInput{Name: " ", Image: upload("a.jpg")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Rex"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing image, got %v", err)
	}
}

func TestService_Create_DeletesImageWhenInsertFails(t *testing.T) {
	repo, images := newTestRepo(), &testImages{}
	repo.createErr = errors.New("disk full")
	svc := NewService(repo, images, nil)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Image: upload("rex.jpg")})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(images.deleted) != 1 || images.deleted[0] != "/images/rex.jpg" {
		t.Fatalf("expected orphan image to be deleted, got %v", images.deleted)
	}
}

func TestService_Update_KeepsImageUnlessProvided(t *testing.T) {
	repo, images := newTestRepo(), &testImages{}
	svc := NewService(repo, images, nil)
	id, _ := repo.Create(context.Background(), Pet{Name: "Old", Image: "/images/old.jpg"})

	n, err := svc.Update(context.Background(), id, UpdateInput{Name: "New", Description: "d"})
	if err != nil || n != 1 {
		t.Fatalf("update: n=%d err=%v", n, err)
	}
	p, _ := repo.GetByID(context.Background(), id)
	if p.Name != "New" || p.Image != "/images/old.jpg" {
		t.Fatalf("unexpected pet %+v", p)
	}

	_, err = svc.Update(context.Background(), id, UpdateInput{Name: "New", Image: upload("new.png")})
	if err != nil {
		t.Fatalf("update with image: %v", err)
	}
	p, _ = repo.GetByID(context.Background(), id)
	if p.Image != "/images/new.png" {
		t.Fatalf("expected new image, got %q", p.Image)
	}
}

func TestService_Update_MissingPetDropsUploadedImage(t *testing.T) {
	images := &testImages{}
	svc := NewService(newTestRepo(), images, nil)

	n, err := svc.Update(context.Background(), 42, UpdateInput{Name: "Ghost", Image: upload("g.jpg")})
	if err != nil || n != 0 {
		t.Fatalf("expected n=0 err=nil, got n=%d err=%v", n, err)
	}
	if len(images.deleted) != 1 {
		t.Fatalf("expected uploaded image to be deleted")
	}
}

func TestService_Adopt_NotifiesOnSuccess(t *testing.T) {
	repo, notifier := newTestRepo(), &testNotifier{}
	svc := NewService(repo, nil, notifier)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	id, _ := repo.Create(context.Background(), Pet{Name: "Buddy"})

	p, err := svc.Adopt(context.Background(), AdoptInput{PetID: id, AdopterName: " Ann ", AdopterIP: "1.2.3.4"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.AdoptedBy == nil || *p.AdoptedBy != "Ann" {
		t.Fatalf("expected adopted_by Ann, got %+v", p)
	}

	if len(notifier.got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.got))
	}
	want := Adoption{PetID: id, PetName: "Buddy", AdopterName: "Ann", AdopterIP: "1.2.3.4", At: now}
	if notifier.got[0] != want {
		t.Fatalf("unexpected adoption %+v", notifier.got[0])
	}
}

func TestService_Adopt_Errors(t *testing.T) {
	repo, notifier := newTestRepo(), &testNotifier{}
	svc := NewService(repo, nil, notifier)
	a, _ := repo.Create(context.Background(), Pet{Name: "A"})
	b, _ := repo.Create(context.Background(), Pet{Name: "B"})

	if _, err := svc.Adopt(context.Background(), AdoptInput{PetID: a, AdopterName: "Ann", AdopterIP: "1.1.1.1"}); err != nil {
		t.Fatalf("first adopt: %v", err)
	}

	cases := []struct {
		name string
		in   AdoptInput
		want error
	}{
		{"empty name", AdoptInput{PetID: b, AdopterName: "  ", AdopterIP: "2.2.2.2"}, ErrInvalidInput},
		{"missing ip", AdoptInput{PetID: b, AdopterName: "Bob"}, ErrInvalidInput},
		{"zero id", AdoptInput{AdopterName: "Bob", AdopterIP: "2.2.2.2"}, ErrInvalidInput},
		{"same ip twice", AdoptInput{PetID: b, AdopterName: "Ann", AdopterIP: "1.1.1.1"}, ErrAlreadyAdopted},
		{"taken pet", AdoptInput{PetID: a, AdopterName: "Bob", AdopterIP: "2.2.2.2"}, ErrPetUnavailable},
		{"unknown pet", AdoptInput{PetID: 99, AdopterName: "Bob", AdopterIP: "2.2.2.2"}, ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Adopt(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	if len(notifier.got) != 1 {
		t.Fatalf("failed adoptions must not notify, got %d", len(notifier.got))
	}
}

func TestService_HasAdopted_EmptyIP(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	has, err := svc.HasAdopted(context.Background(), " ")
	if err != nil || has {
		t.Fatalf("expected false for empty ip, got %v %v", has, err)
	}
}

func TestService_Seed(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	catalog := DefaultCatalog()

	n, err := svc.Seed(context.Background(), catalog, false)
	if err != nil || n != 6 {
		t.Fatalf("first seed: n=%d err=%v", n, err)
	}

	// con datos y sin reset no toca nada
	_, _ = repo.Delete(context.Background(), 1)
	n, err = svc.Seed(context.Background(), catalog, false)
	if err != nil || n != 0 {
		t.Fatalf("second seed: n=%d err=%v", n, err)
	}
	if c, _ := repo.Count(context.Background()); c != 5 {
		t.Fatalf("expected 5 pets, got %d", c)
	}

	n, err = svc.Seed(context.Background(), catalog, true)
	if err != nil || n != 6 {
		t.Fatalf("reset seed: n=%d err=%v", n, err)
	}
	p, err := repo.GetByID(context.Background(), 1)
	if err != nil || p.Name != "Buddy" || p.Image != "/images/1.jpg" {
		t.Fatalf("unexpected seeded pet %+v err=%v", p, err)
	}
}

func TestParseCatalog_Validates(t *testing.T) {
	if _, err := ParseCatalog([]byte("pets:\n  - id: 1\n    name: ''\n")); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := ParseCatalog([]byte("pets:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n")); err == nil {
		t.Fatalf("expected error for duplicate id")
	}
	if _, err := ParseCatalog([]byte("pets: [")); err == nil {
		t.Fatalf("expected yaml error")
	}

	c, err := ParseCatalog([]byte("pets:\n  - name: A\n  - name: B\n"))
	if err != nil || len(c.Pets) != 2 {
		t.Fatalf("unexpected catalog %+v err=%v", c, err)
	}
}

func TestAdoption_Text(t *testing.T) {
	a := Adoption{PetID: 1, AdopterName: "Ann", AdopterIP: "1.2.3.4"}
	if got := a.Text(); got != "Pet: 1 has been adopted by Ann (IP: 1.2.3.4)" {
		t.Fatalf("unexpected text %q", got)
	}
}
