package pets

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultCatalogYAML []byte

type SeedPet struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type Catalog struct {
	Pets []SeedPet `yaml:"pets"`
}

// DefaultCatalog devuelve el catálogo embebido.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		// seed.yaml va embebido en el binario; si no parsea es un bug de build.
		panic(fmt.Sprintf("pets: invalid embedded seed catalog: %v", err))
	}
	return c
}

// LoadCatalog lee un catálogo YAML desde disco.
func LoadCatalog(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse seed catalog: %w", err)
	}
	seen := map[int64]struct{}{}
	for i, p := range c.Pets {
		if strings.TrimSpace(p.Name) == "" {
			return Catalog{}, fmt.Errorf("seed pet #%d: name is required", i+1)
		}
		if p.ID < 0 {
			return Catalog{}, fmt.Errorf("seed pet #%d: negative id", i+1)
		}
		if p.ID != 0 {
			if _, dup := seen[p.ID]; dup {
				return Catalog{}, fmt.Errorf("seed pet #%d: duplicate id %d", i+1, p.ID)
			}
			seen[p.ID] = struct{}{}
		}
	}
	return c, nil
}

// Seed carga el catálogo.
// - reset=false: solo si no hay mascotas (idempotente entre reinicios).
// - reset=true: borra todo y vuelve a cargar (comportamiento "demo").
// Devuelve cuántas mascotas insertó.
func (s *Service) Seed(ctx context.Context, c Catalog, reset bool) (int, error) {
	if reset {
		if err := s.repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("reset pets: %w", err)
		}
	} else {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count pets: %w", err)
		}
		if n > 0 {
			return 0, nil
		}
	}

	for _, sp := range c.Pets {
		if _, err := s.repo.Create(ctx, Pet{
			ID:          sp.ID,
			Name:        strings.TrimSpace(sp.Name),
			Description: strings.TrimSpace(sp.Description),
			Image:       strings.TrimSpace(sp.Image),
		}); err != nil {
			return 0, fmt.Errorf("seed pet %q: %w", sp.Name, err)
		}
	}
	return len(c.Pets), nil
}
