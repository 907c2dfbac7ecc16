package services

import (
	"context"
	"strings"

	"github.com/electro05/storefront/app/data"
	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/assets"
	"github.com/electro05/storefront/pkg/logger"
)

// BrandService merges the bundled partner brand list with whatever the
// remote API knows about. The remote list wins on name collisions but
// the bundled list guarantees the marquee is never empty.
type BrandService struct {
	catalog *CatalogService
}

func NewBrandService() *BrandService {
	return &BrandService{catalog: NewCatalogService()}
}

// Brands returns the merged brand list. Merging is keyed on the
// lowercased, trimmed name; bundled entries keep their position and
// remote-only entries are appended in remote order. A remote failure
// degrades to the bundled list alone.
func (s *BrandService) Brands(ctx context.Context) []models.Brand {
	static, err := data.Brands()
	if err != nil {
		// The embedded file is part of the binary; this only trips on
		// a broken build.
		logger.Error("brands: bundled list unreadable", "error", err)
	}

	remote, err := s.catalog.RemoteBrands(ctx)
	if err != nil {
		logger.Warn("brands: remote fetch failed, using bundled list", "error", err)
		return resolveLogos(static)
	}

	return resolveLogos(Merge(static, remote))
}

// Merge overlays remote onto static keyed by normalized name.
func Merge(static, remote []models.Brand) []models.Brand {
	index := make(map[string]int, len(static))
	merged := make([]models.Brand, 0, len(static)+len(remote))

	for _, b := range static {
		key := brandKey(b.Name)
		if _, seen := index[key]; seen {
			continue
		}
		index[key] = len(merged)
		merged = append(merged, b)
	}
	for _, b := range remote {
		key := brandKey(b.Name)
		if i, seen := index[key]; seen {
			merged[i] = b
			continue
		}
		index[key] = len(merged)
		merged = append(merged, b)
	}
	return merged
}

// Marquee triples the brand list so the scrolling strip loops without
// a visible seam.
func Marquee(brands []models.Brand) []models.Brand {
	tripled := make([]models.Brand, 0, len(brands)*3)
	for i := 0; i < 3; i++ {
		tripled = append(tripled, brands...)
	}
	return tripled
}

func brandKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func resolveLogos(brands []models.Brand) []models.Brand {
	for i := range brands {
		brands[i].Logo = assets.URL(brands[i].Logo)
	}
	return brands
}
