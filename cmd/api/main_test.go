package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndSeed_SeedsOnceAndResets(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "pets.db")}

	stores, err := openAndSeed(ctx, cfg, logger.Nop(), false)
	require.NoError(t, err)

	n, err := stores.Pets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = stores.Pets.Delete(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, stores.Close())

	// sin reset no se vuelve a sembrar una tabla con datos
	stores, err = openAndSeed(ctx, cfg, logger.Nop(), false)
	require.NoError(t, err)
	n, err = stores.Pets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, stores.Close())

	require.NoError(t, runSeed(ctx, cfg, logger.Nop(), true))

	stores, err = openAndSeed(ctx, cfg, logger.Nop(), false)
	require.NoError(t, err)
	defer stores.Close()

	n, err = stores.Pets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	title, err := stores.Site.GetWebsiteTitle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pet Adoption Site", title.Title)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pets:\n  - name: Rex\n    image: /images/rex.jpg\n"), 0o644))

	c, err := loadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Pets, 1)
	assert.Equal(t, "Rex", c.Pets[0].Name)

	c, err = loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Pets, 6)
}
