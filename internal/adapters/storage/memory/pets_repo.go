package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	byID   map[int64]pets.Pet
	nextID int64
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:   make(map[int64]pets.Pet),
		nextID: 1,
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clonePet(p))
	}

	// mismo orden que el SELECT ... ORDER BY id
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
	}
	if _, exists := r.byID[p.ID]; exists {
		return 0, pets.ErrInvalidInput
	}
	if p.AdopterIP != nil && r.hasAdoptedLocked(*p.AdopterIP) {
		return 0, pets.ErrAlreadyAdopted
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.byID[p.ID] = clonePet(p)
	return p.ID, nil
}

func (r *petRepo) UpdateProfile(ctx context.Context, id int64, in pets.ProfileUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.Name = in.Name
	p.Description = in.Description
	if in.Image != nil {
		p.Image = *in.Image
	}
	r.byID[id] = p
	return 1, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *petRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// sqlite sin AUTOINCREMENT vuelve a 1 con la tabla vacía
	r.byID = make(map[int64]pets.Pet)
	r.nextID = 1
	return nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// Adopt chequea y escribe bajo el mismo lock: equivalente al UPDATE condicional de sqlite.
func (r *petRepo) Adopt(ctx context.Context, id int64, adopterName, adopterIP string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasAdoptedLocked(adopterIP) {
		return pets.ErrAlreadyAdopted
	}
	p, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	if p.IsAdopted() {
		return pets.ErrPetUnavailable
	}

	name, ip := adopterName, adopterIP
	p.AdoptedBy = &name
	p.AdopterIP = &ip
	r.byID[id] = p
	return nil
}

func (r *petRepo) Unadopt(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.AdoptedBy = nil
	p.AdopterIP = nil
	r.byID[id] = p
	return 1, nil
}

func (r *petRepo) HasAdopted(ctx context.Context, adopterIP string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasAdoptedLocked(adopterIP), nil
}

func (r *petRepo) hasAdoptedLocked(ip string) bool {
	for _, p := range r.byID {
		if p.AdopterIP != nil && *p.AdopterIP == ip {
			return true
		}
	}
	return false
}

// clonePet evita que el caller mute los punteros guardados en el mapa.
func clonePet(p pets.Pet) pets.Pet {
	if p.AdoptedBy != nil {
		v := *p.AdoptedBy
		p.AdoptedBy = &v
	}
	if p.AdopterIP != nil {
		v := *p.AdopterIP
		p.AdopterIP = &v
	}
	return p
}
