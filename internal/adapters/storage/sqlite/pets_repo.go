package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, description, image, adopted_by, adopter_ip`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p         pets.Pet
		adoptedBy sql.NullString
		adopterIP sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &adoptedBy, &adopterIP); err != nil {
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
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = ?`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if p.ID != 0 {
		res, err = r.db.ExecContext(ctx, `
			INSERT INTO pets (id, name, description, image, adopted_by, adopter_ip)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Description, p.Image, nullString(p.AdoptedBy), nullString(p.AdopterIP))
	} else {
		res, err = r.db.ExecContext(ctx, `
			INSERT INTO pets (name, description, image, adopted_by, adopter_ip)
			VALUES (?, ?, ?, ?, ?)
		`, p.Name, p.Description, p.Image, nullString(p.AdoptedBy), nullString(p.AdopterIP))
	}
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "adopter_ip") {
				return 0, pets.ErrAlreadyAdopted
			}
			// id duplicado
			return 0, pets.ErrInvalidInput
		}
		return 0, fmt.Errorf("create pet: %w", err)
	}
	return res.LastInsertId()
}

func (r *PetsRepo) UpdateProfile(ctx context.Context, id int64, in pets.ProfileUpdate) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if in.Image != nil {
		res, err = r.db.ExecContext(ctx,
			`UPDATE pets SET name = ?, description = ?, image = ? WHERE id = ?`,
			in.Name, in.Description, *in.Image, id)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE pets SET name = ?, description = ? WHERE id = ?`,
			in.Name, in.Description, id)
	}
	if err != nil {
		return 0, fmt.Errorf("update pet: %w", err)
	}
	return res.RowsAffected()
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete pet: %w", err)
	}
	return res.RowsAffected()
}

func (r *PetsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets`); err != nil {
		return fmt.Errorf("delete pets: %w", err)
	}
	return nil
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return n, nil
}

// Adopt es un único UPDATE condicional: la mascota debe estar libre y la IP sin
// adopciones. El índice único parcial sobre adopter_ip cubre la carrera restante.
func (r *PetsRepo) Adopt(ctx context.Context, id int64, adopterName, adopterIP string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted_by = ?, adopter_ip = ?
		WHERE id = ?
		  AND adopted_by IS NULL
		  AND adopter_ip IS NULL
		  AND NOT EXISTS (SELECT 1 FROM pets WHERE adopter_ip = ?)
	`, adopterName, adopterIP, id, adopterIP)
	if err != nil {
		if isUniqueViolation(err) {
			return pets.ErrAlreadyAdopted
		}
		return fmt.Errorf("adopt pet: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adopt pet: %w", err)
	}
	if n == 1 {
		return nil
	}
	return r.classifyAdoptMiss(ctx, id, adopterIP)
}

// classifyAdoptMiss explica por qué el UPDATE no tocó ninguna fila.
func (r *PetsRepo) classifyAdoptMiss(ctx context.Context, id int64, adopterIP string) error {
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
		`UPDATE pets SET adopted_by = NULL, adopter_ip = NULL WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("unadopt pet: %w", err)
	}
	return res.RowsAffected()
}

func (r *PetsRepo) HasAdopted(ctx context.Context, adopterIP string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pets WHERE adopter_ip = ?)`, adopterIP).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check adoption: %w", err)
	}
	return exists == 1, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var _ pets.Repository = (*PetsRepo)(nil)
