package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"certifica_condo/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// LoadCatalog reads the coin package / plan catalog from path, or the embedded
// default when path is empty.
func LoadCatalog(path string) (entities.Catalog, error) {
	raw := defaultCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return entities.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (entities.Catalog, error) {
	var c entities.Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return entities.Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	seen := make(map[string]bool)
	for _, p := range c.CoinPackages {
		if p.ID == "" || p.Coins <= 0 || p.Price <= 0 {
			return entities.Catalog{}, fmt.Errorf("%w: coin package %q", ErrInvalidCatalog, p.ID)
		}
		if seen["coins:"+p.ID] {
			return entities.Catalog{}, fmt.Errorf("%w: duplicate coin package %q", ErrInvalidCatalog, p.ID)
		}
		seen["coins:"+p.ID] = true
	}
	for _, p := range c.Plans {
		if p.ID == "" || p.Price <= 0 {
			return entities.Catalog{}, fmt.Errorf("%w: plan %q", ErrInvalidCatalog, p.ID)
		}
		if seen["plan:"+p.ID] {
			return entities.Catalog{}, fmt.Errorf("%w: duplicate plan %q", ErrInvalidCatalog, p.ID)
		}
		seen["plan:"+p.ID] = true
	}
	return c, nil
}
