// Package disk guarda imágenes subidas en un directorio servido bajo /images/.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"pet-adoption/internal/ports/media"

	"github.com/google/uuid"
)

const PublicPrefix = "/images/"

var ErrInvalidRef = errors.New("invalid image reference")

// allowedExt: solo imágenes raster; el resto (svg incluido, puede traer scripts)
// se guarda sin extensión y el file server no lo sirve como imagen.
var allowedExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".avif": {},
}

type Store struct {
	dir     string
	newName func() string
}

func NewStore(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("images dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &Store{
		dir:     dir,
		newName: func() string { return uuid.NewString() },
	}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save escribe el archivo como <uuid><ext> y devuelve /images/<uuid><ext>.
func (s *Store) Save(ctx context.Context, up media.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if up.Content == nil {
		return "", errors.New("empty upload")
	}

	ext := strings.ToLower(filepath.Ext(up.Filename))
	if _, ok := allowedExt[ext]; !ok {
		ext = ""
	}
	name := s.newName() + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if _, err := io.Copy(f, up.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close image: %w", err)
	}
	return PublicPrefix + name, nil
}

// Delete borra el archivo apuntado por ref. Un archivo inexistente no es error.
func (s *Store) Delete(ctx context.Context, ref string) error {
	name, err := nameFromRef(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func nameFromRef(ref string) (string, error) {
	if !strings.HasPrefix(ref, PublicPrefix) {
		return "", ErrInvalidRef
	}
	name := strings.TrimPrefix(ref, PublicPrefix)
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidRef
	}
	return name, nil
}

var _ media.ImageStore = (*Store)(nil)
