package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
)

// ExportFile writes the full product list as a pretty-printed JSON
// document named with the current date, e.g. inventory-export-2026-08-29.json.
// Returns the path written.
func ExportFile(dir string, products []inventory.Product) (string, error) {
	b, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("inventory-export-%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ImportFile reads a JSON export. Content that fails to parse is
// rejected with an error and nothing else happens; the caller's state
// stays untouched.
func ImportFile(path string) ([]inventory.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []inventory.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("invalid inventory file %s: %w", filepath.Base(path), err)
	}
	for i := range products {
		if products[i].Sales == nil {
			products[i].Sales = []inventory.Sale{}
		}
	}
	return products, nil
}
