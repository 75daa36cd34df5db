package pets

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrAlreadyAdopted: la IP ya tiene una mascota adoptada.
	ErrAlreadyAdopted = errors.New("adopter ip already has a pet")

	// ErrPetUnavailable: la mascota ya fue adoptada por otra IP.
	ErrPetUnavailable = errors.New("pet has already been adopted")
)

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Create inserta y devuelve el id. Si p.ID != 0 se respeta (seed).
	Create(ctx context.Context, p Pet) (int64, error)
	// UpdateProfile devuelve filas afectadas (0 si no existe).
	UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)

	// Adopt registra la adopción de forma atómica: falla con ErrAlreadyAdopted si la IP
	// ya adoptó, ErrNotFound si no existe y ErrPetUnavailable si otra IP la tiene.
	Adopt(ctx context.Context, id int64, adopterName, adopterIP string) error
	// Unadopt limpia adopted_by y adopter_ip. Devuelve filas afectadas.
	Unadopt(ctx context.Context, id int64) (int64, error)
	HasAdopted(ctx context.Context, adopterIP string) (bool, error)
}
