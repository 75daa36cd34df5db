package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-adoption/internal/ports/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	s.newName = func() string { return "fixed" }

	ref, err := s.Save(context.Background(), media.Upload{
		Filename: "Dog.JPG",
		Content:  strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/images/fixed.jpg", ref)

	b, err := os.ReadFile(filepath.Join(dir, "fixed.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(b))

	require.NoError(t, s.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, "fixed.jpg"))
	assert.True(t, os.IsNotExist(err))

	// borrar dos veces no falla
	require.NoError(t, s.Delete(context.Background(), ref))
}

func TestStore_SaveUniqueNames(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(context.Background(), media.Upload{Filename: "a.png", Content: strings.NewReader("a")})
	require.NoError(t, err)
	b, err := s.Save(context.Background(), media.Upload{Filename: "a.png", Content: strings.NewReader("b")})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
}

func TestStore_DropsUnknownExtension(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	s.newName = func() string { return "n" }

	for _, name := range []string{"evil.html", "cat.svg", "CAT.SVG"} {
		ref, err := s.Save(context.Background(), media.Upload{Filename: name, Content: strings.NewReader("<script>")})
		require.NoError(t, err)
		assert.Equal(t, "/images/n", ref, name)
		require.NoError(t, s.Delete(context.Background(), ref))
	}
}

func TestStore_DeleteRejectsTraversal(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, ref := range []string{"/images/../secret", "/etc/passwd", "/images/", "/images/a/b.jpg"} {
		assert.ErrorIs(t, s.Delete(context.Background(), ref), ErrInvalidRef, ref)
	}
}
