package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/ports/media"
)

// AdoptionNotifier recibe adopciones ya registradas.
// No devuelve error: es fire-and-forget, la implementación encola y vuelve.
type AdoptionNotifier interface {
	NotifyAdoption(ctx context.Context, a Adoption)
}

type nopNotifier struct{}

func (nopNotifier) NotifyAdoption(context.Context, Adoption) {}

type Service struct {
	repo     Repository
	images   media.ImageStore
	notifier AdoptionNotifier
	now      func() time.Time
}

func NewService(repo Repository, images media.ImageStore, notifier AdoptionNotifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		repo:     repo,
		images:   images,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name        string
	Description string
	Image       *media.Upload
}

// Create guarda la imagen y después inserta la fila.
// Si el insert falla, la imagen se borra (best-effort).
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Image == nil {
		return 0, ErrInvalidInput
	}

	ref, err := s.saveImage(ctx, in.Image)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, Pet{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Image:       ref,
	})
	if err != nil {
		_ = s.images.Delete(ctx, ref)
		return 0, err
	}
	return id, nil
}

type UpdateInput struct {
	Name        string
	Description string
	Image       *media.Upload // opcional
}

// Update devuelve filas afectadas (0 si el id no existe).
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, ErrInvalidInput
	}

	upd := ProfileUpdate{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	if in.Image != nil {
		ref, err := s.saveImage(ctx, in.Image)
		if err != nil {
			return 0, err
		}
		upd.Image = &ref
	}

	n, err := s.repo.UpdateProfile(ctx, id, upd)
	if err != nil || n == 0 {
		if upd.Image != nil {
			_ = s.images.Delete(ctx, *upd.Image)
		}
	}
	return n, err
}

func (s *Service) Remove(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

type AdoptInput struct {
	PetID       int64
	AdopterName string
	AdopterIP   string
}

// Adopt registra la adopción y encola la notificación.
// La notificación nunca afecta el resultado.
func (s *Service) Adopt(ctx context.Context, in AdoptInput) (Pet, error) {
	name := strings.TrimSpace(in.AdopterName)
	ip := strings.TrimSpace(in.AdopterIP)
	if in.PetID <= 0 || name == "" || ip == "" {
		return Pet{}, ErrInvalidInput
	}

	if err := s.repo.Adopt(ctx, in.PetID, name, ip); err != nil {
		return Pet{}, err
	}

	p, err := s.repo.GetByID(ctx, in.PetID)
	if err != nil {
		// la adopción ya quedó; no la deshacemos por un error de lectura
		p = Pet{ID: in.PetID, AdoptedBy: &name, AdopterIP: &ip}
	}

	s.notifier.NotifyAdoption(ctx, Adoption{
		PetID:       in.PetID,
		PetName:     p.Name,
		AdopterName: name,
		AdopterIP:   ip,
		At:          s.now(),
	})
	return p, nil
}

func (s *Service) Unadopt(ctx context.Context, id int64) (int64, error) {
	return s.repo.Unadopt(ctx, id)
}

func (s *Service) HasAdopted(ctx context.Context, ip string) (bool, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false, nil
	}
	return s.repo.HasAdopted(ctx, ip)
}

func (s *Service) saveImage(ctx context.Context, up *media.Upload) (string, error) {
	if s.images == nil {
		return "", errors.New("image store not configured")
	}
	ref, err := s.images.Save(ctx, *up)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return ref, nil
}
