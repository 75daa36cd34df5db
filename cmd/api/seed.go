package main

import (
	"context"
	"strings"

	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
)

func runSeed(ctx context.Context, cfg config.Config, log logger.Logger, reset bool) error {
	stores, err := openAndSeed(ctx, cfg, log, reset || cfg.SeedReset)
	if err != nil {
		return err
	}
	return stores.Close()
}

// openAndSeed abre el store, carga el catálogo (si la tabla está vacía o reset)
// y asegura los textos por defecto del sitio.
func openAndSeed(ctx context.Context, cfg config.Config, log logger.Logger, reset bool) (*storage.Stores, error) {
	stores, err := storage.Open(ctx, storage.Options{
		Memory: cfg.DBMemory,
		DSN:    cfg.DBDSN,
		Path:   cfg.DBPath,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg.SeedFile)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}

	n, err := pets.NewService(stores.Pets, nil, nil).Seed(ctx, catalog, reset)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	if n > 0 {
		log.Info("seeded pets", map[string]any{"count": n, "reset": reset})
	}

	if err := site.NewService(stores.Site).EnsureDefaults(ctx); err != nil {
		_ = stores.Close()
		return nil, err
	}
	return stores, nil
}

func loadCatalog(path string) (pets.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return pets.DefaultCatalog(), nil
	}
	return pets.LoadCatalog(path)
}
