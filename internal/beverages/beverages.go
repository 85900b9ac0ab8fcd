// Package beverages provides the reference table of caffeine content for common drinks.
package beverages

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/koffee/internal/models"
)

//go:embed catalog.toml
var defaultCatalog string

type catalogFile struct {
	Beverages []models.Beverage `toml:"beverage"`
}

// Default returns the built-in beverage table.
func Default() []models.Beverage {
	list, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded beverage catalog is invalid: %v", err))
	}
	return list
}

// Parse decodes a TOML catalog document. Entries keep their document order.
func Parse(doc string) ([]models.Beverage, error) {
	var cf catalogFile
	md, err := toml.Decode(doc, &cf)
	if err != nil {
		return nil, fmt.Errorf("catalog parse failed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("catalog has unknown keys: %v", undecoded)
	}
	for i, b := range cf.Beverages {
		if b.Name == "" {
			return nil, fmt.Errorf("beverage %d: name is required", i+1)
		}
		if b.CaffeineMg < 0 {
			return nil, fmt.Errorf("beverage %q: caffeine_mg must not be negative", b.Name)
		}
	}
	if len(cf.Beverages) == 0 {
		return nil, fmt.Errorf("catalog has no beverages")
	}
	return cf.Beverages, nil
}

// Load reads a catalog from path. An empty path yields the built-in table.
func Load(path string) ([]models.Beverage, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	list, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
