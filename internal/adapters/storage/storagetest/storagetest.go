// Package storagetest es la suite de contrato compartida por todos los backends.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PetRepoFactory devuelve un repositorio vacío y aislado por test.
type PetRepoFactory func(t *testing.T) pets.Repository

type SiteRepoFactory func(t *testing.T) site.Repository

func RunPetRepository(t *testing.T, newRepo PetRepoFactory) {
	t.Run("create list get", func(t *testing.T) { testCreateListGet(t, newRepo(t)) })
	t.Run("create keeps explicit id", func(t *testing.T) { testExplicitID(t, newRepo(t)) })
	t.Run("ids restart after delete all", func(t *testing.T) { testIDsAfterDeleteAll(t, newRepo(t)) })
	t.Run("update profile", func(t *testing.T) { testUpdateProfile(t, newRepo(t)) })
	t.Run("delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("adopt and unadopt", func(t *testing.T) { testAdoptUnadopt(t, newRepo(t)) })
	t.Run("adopt errors", func(t *testing.T) { testAdoptErrors(t, newRepo(t)) })
	t.Run("concurrent adopt same pet", func(t *testing.T) { testConcurrentSamePet(t, newRepo(t)) })
	t.Run("concurrent adopt same ip", func(t *testing.T) { testConcurrentSameIP(t, newRepo(t)) })
}

func RunSiteRepository(t *testing.T, newRepo SiteRepoFactory) {
	t.Run("missing before defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.GetPageDetails(ctx)
		require.ErrorIs(t, err, site.ErrNotFound)
		_, err = repo.GetWebsiteTitle(ctx)
		require.ErrorIs(t, err, site.ErrNotFound)

		n, err := repo.UpdateWebsiteTitle(ctx, "X")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("defaults are idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.EnsureDefaults(ctx, site.DefaultPageDetails, site.DefaultWebsiteTitle))

		n, err := repo.UpdateWebsiteTitle(ctx, "Edited")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		// una segunda llamada no pisa lo editado
		require.NoError(t, repo.EnsureDefaults(ctx, site.DefaultPageDetails, site.DefaultWebsiteTitle))

		title, err := repo.GetWebsiteTitle(ctx)
		require.NoError(t, err)
		assert.Equal(t, site.WebsiteTitle{ID: 1, Title: "Edited"}, title)

		page, err := repo.GetPageDetails(ctx)
		require.NoError(t, err)
		assert.Equal(t, site.DefaultPageDetails, page)
	})

	t.Run("update page details", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.EnsureDefaults(ctx, site.DefaultPageDetails, site.DefaultWebsiteTitle))

		n, err := repo.UpdatePageDetails(ctx, "Hi", "Adopt today")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		page, err := repo.GetPageDetails(ctx)
		require.NoError(t, err)
		assert.Equal(t, site.PageDetails{ID: 1, Title: "Hi", Description: "Adopt today"}, page)
	})
}

func testCreateListGet(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id1, err := repo.Create(ctx, pets.Pet{Name: "Buddy", Description: "friendly", Image: "/images/1.jpg"})
	require.NoError(t, err)
	id2, err := repo.Create(ctx, pets.Pet{Name: "Luna", Image: "/images/2.jpg"})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Buddy", list[0].Name)
	assert.Equal(t, "Luna", list[1].Name)
	assert.False(t, list[0].IsAdopted())

	got, err := repo.GetByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, pets.Pet{ID: id1, Name: "Buddy", Description: "friendly", Image: "/images/1.jpg"}, got)

	_, err = repo.GetByID(ctx, id2+100)
	require.ErrorIs(t, err, pets.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func testExplicitID(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id, err := repo.Create(ctx, pets.Pet{ID: 5, Name: "Max", Image: "/images/5.jpg"})
	require.NoError(t, err)
	assert.EqualValues(t, 5, id)

	_, err = repo.Create(ctx, pets.Pet{ID: 5, Name: "Other"})
	require.ErrorIs(t, err, pets.ErrInvalidInput)

	next, err := repo.Create(ctx, pets.Pet{Name: "Next"})
	require.NoError(t, err)
	assert.Greater(t, next, int64(5))

	require.NoError(t, repo.DeleteAll(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// Después de DeleteAll los ids vuelven a empezar, igual en todos los backends:
// seed --reset deja la misma numeración en memoria, sqlite y postgres.
func testIDsAfterDeleteAll(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	_, err := repo.Create(ctx, pets.Pet{ID: 9, Name: "Old"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteAll(ctx))

	first, err := repo.Create(ctx, pets.Pet{Name: "First"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	require.NoError(t, repo.DeleteAll(ctx))
	for _, id := range []int64{1, 2, 3} {
		_, err := repo.Create(ctx, pets.Pet{ID: id, Name: "Seeded"})
		require.NoError(t, err)
	}
	next, err := repo.Create(ctx, pets.Pet{Name: "Added"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, next)
}

func testUpdateProfile(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id, err := repo.Create(ctx, pets.Pet{Name: "Charlie", Description: "old", Image: "/images/3.jpg"})
	require.NoError(t, err)

	n, err := repo.UpdateProfile(ctx, id, pets.ProfileUpdate{Name: "Charlie II", Description: "new"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Charlie II", got.Name)
	assert.Equal(t, "new", got.Description)
	assert.Equal(t, "/images/3.jpg", got.Image, "image must be kept when not provided")

	img := "/images/new.png"
	_, err = repo.UpdateProfile(ctx, id, pets.ProfileUpdate{Name: "Charlie II", Image: &img})
	require.NoError(t, err)
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, img, got.Image)

	n, err = repo.UpdateProfile(ctx, id+100, pets.ProfileUpdate{Name: "ghost"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testDelete(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id, err := repo.Create(ctx, pets.Pet{Name: "Bella"})
	require.NoError(t, err)

	n, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testAdoptUnadopt(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id, err := repo.Create(ctx, pets.Pet{Name: "Buddy"})
	require.NoError(t, err)

	has, err := repo.HasAdopted(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.Adopt(ctx, id, "Ann", "1.2.3.4"))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.AdoptedBy)
	require.NotNil(t, got.AdopterIP)
	assert.Equal(t, "Ann", *got.AdoptedBy)
	assert.Equal(t, "1.2.3.4", *got.AdopterIP)

	has, err = repo.HasAdopted(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, has)

	n, err := repo.Unadopt(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.AdoptedBy)
	assert.Nil(t, got.AdopterIP)

	has, err = repo.HasAdopted(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, has)

	// la IP queda libre para adoptar de nuevo
	require.NoError(t, repo.Adopt(ctx, id, "Ann", "1.2.3.4"))

	n, err = repo.Unadopt(ctx, id+100)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testAdoptErrors(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	a, err := repo.Create(ctx, pets.Pet{Name: "A"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, pets.Pet{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, repo.Adopt(ctx, a, "Ann", "1.1.1.1"))

	err = repo.Adopt(ctx, b, "Ann again", "1.1.1.1")
	require.ErrorIs(t, err, pets.ErrAlreadyAdopted)

	err = repo.Adopt(ctx, a, "Bob", "2.2.2.2")
	require.ErrorIs(t, err, pets.ErrPetUnavailable)

	err = repo.Adopt(ctx, b+100, "Bob", "2.2.2.2")
	require.ErrorIs(t, err, pets.ErrNotFound)

	// el fallo no dejó rastros
	got, err := repo.GetByID(ctx, b)
	require.NoError(t, err)
	assert.False(t, got.IsAdopted())
}

func testConcurrentSamePet(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	id, err := repo.Create(ctx, pets.Pet{Name: "Popular"})
	require.NoError(t, err)

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Adopt(ctx, id, fmt.Sprintf("user-%d", i), fmt.Sprintf("10.0.0.%d", i+1))
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, pets.ErrPetUnavailable)
	}
	assert.Equal(t, 1, ok)
}

func testConcurrentSameIP(t *testing.T, repo pets.Repository) {
	ctx := context.Background()

	const workers = 16
	ids := make([]int64, workers)
	for i := range ids {
		id, err := repo.Create(ctx, pets.Pet{Name: fmt.Sprintf("pet-%d", i)})
		require.NoError(t, err)
		ids[i] = id
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Adopt(ctx, ids[i], "Greedy", "9.9.9.9")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, pets.ErrAlreadyAdopted)
	}
	assert.Equal(t, 1, ok)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	adopted := 0
	for _, p := range list {
		if p.IsAdopted() {
			adopted++
		}
	}
	assert.Equal(t, 1, adopted)
}
