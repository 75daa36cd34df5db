package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, description, image, adopted_by, adopter_ip`

func scanPet(scan func(dest ...any) error) (pets.Pet, error) {
	var (
		p         pets.Pet
		adoptedBy sql.NullString
		adopterIP sql.NullString
	)
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Image, &adoptedBy, &adopterIP); err != nil {
		return pets.Pet{}, err
	}
	if adoptedBy.Valid {
		p.AdoptedBy = &adoptedBy.String
	}
	if adopterIP.Valid {
		p.AdopterIP = &adopterIP.String
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// Create con id explícito (seed) avanza la secuencia para que el próximo
// insert sin id no choque.
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	var err error
	if p.ID != 0 {
		err = r.db.QueryRowContext(ctx, `
			INSERT INTO pets (id, name, description, image, adopted_by, adopter_ip)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, p.ID, p.Name, p.Description, p.Image, nullString(p.AdoptedBy), nullString(p.AdopterIP)).Scan(&id)
		if err == nil {
			_, err = r.db.ExecContext(ctx,
				`SELECT setval(pg_get_serial_sequence('pets', 'id'), (SELECT MAX(id) FROM pets))`)
		}
	} else {
		err = r.db.QueryRowContext(ctx, `
			INSERT INTO pets (name, description, image, adopted_by, adopter_ip)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id
		`, p.Name, p.Description, p.Image, nullString(p.AdoptedBy), nullString(p.AdopterIP)).Scan(&id)
	}
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			if constraint == "idx_pets_adopter_ip" {
				return 0, pets.ErrAlreadyAdopted
			}
			return 0, pets.ErrInvalidInput
		}
		return 0, fmt.Errorf("create pet: %w", err)
	}
	return id, nil
}

func (r *PetsRepo) UpdateProfile(ctx context.Context, id int64, in pets.ProfileUpdate) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			description = $3,
			image = COALESCE($4, image)
		WHERE id = $1
	`,
		id,
		in.Name,
		in.Description,
		nullString(in.Image),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAll reinicia también la secuencia, como sqlite con la tabla vacía.
func (r *PetsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE pets RESTART IDENTITY`); err != nil {
		return fmt.Errorf("delete pets: %w", err)
	}
	return nil
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n)
	return n, err
}

// Adopt: mismo UPDATE condicional que en sqlite. Bajo READ COMMITTED el NOT EXISTS
// puede no ver una adopción concurrente; ahí salta idx_pets_adopter_ip (23505).
func (r *PetsRepo) Adopt(ctx context.Context, id int64, adopterName, adopterIP string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted_by = $2, adopter_ip = $3
		WHERE id = $1
		  AND adopted_by IS NULL
		  AND adopter_ip IS NULL
		  AND NOT EXISTS (SELECT 1 FROM pets WHERE adopter_ip = $3)
	`, id, adopterName, adopterIP)
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return pets.ErrAlreadyAdopted
		}
		return fmt.Errorf("adopt pet: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	has, err := r.HasAdopted(ctx, adopterIP)
	if err != nil {
		return err
	}
	if has {
		return pets.ErrAlreadyAdopted
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return pets.ErrPetUnavailable
}

func (r *PetsRepo) Unadopt(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pets SET adopted_by = NULL, adopter_ip = NULL WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PetsRepo) HasAdopted(ctx context.Context, adopterIP string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pets WHERE adopter_ip = $1)`, adopterIP).Scan(&exists)
	return exists, err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

var _ pets.Repository = (*PetsRepo)(nil)
