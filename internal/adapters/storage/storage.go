// Package storage elige el backend de persistencia según la configuración.
package storage

import (
	"context"
	"database/sql"
	"strings"

	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	sq "pet-adoption/internal/adapters/storage/sqlite"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Options: Memory > DSN (Postgres) > Path (SQLite).
type Options struct {
	Memory bool
	DSN    string
	Path   string
}

type Stores struct {
	Backend string
	Pets    pets.Repository
	Site    site.Repository

	db *sql.DB
}

func Open(ctx context.Context, opts Options) (*Stores, error) {
	switch {
	case opts.Memory:
		return &Stores{
			Backend: BackendMemory,
			Pets:    mem.NewPetRepo(),
			Site:    mem.NewSiteRepo(),
		}, nil

	case strings.TrimSpace(opts.DSN) != "":
		db, err := pg.Open(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Backend: BackendPostgres,
			Pets:    pg.NewPetsRepo(db),
			Site:    pg.NewSiteRepo(db),
			db:      db,
		}, nil

	default:
		db, err := sq.Open(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Backend: BackendSQLite,
			Pets:    sq.NewPetsRepo(db),
			Site:    sq.NewSiteRepo(db),
			db:      db,
		}, nil
	}
}

func (s *Stores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
