// Package data holds static datasets shipped with the binary.
package data

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/electro05/storefront/app/models"
)

//go:embed brands.json
var files embed.FS

// Brands returns the bundled partner brand list. The slice is freshly
// decoded on each call so callers may mutate it safely.
func Brands() ([]models.Brand, error) {
	raw, err := files.ReadFile("brands.json")
	if err != nil {
		return nil, fmt.Errorf("data: read brands.json: %w", err)
	}
	var brands []models.Brand
	if err := json.Unmarshal(raw, &brands); err != nil {
		return nil, fmt.Errorf("data: decode brands.json: %w", err)
	}
	return brands, nil
}
