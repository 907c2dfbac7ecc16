package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/assets"
	"github.com/electro05/storefront/pkg/http"
)

// ProductQuery carries the optional catalog filters. Zero values are
// omitted from the upstream request.
type ProductQuery struct {
	Promo    bool
	OnSale   bool
	Search   string
	Brand    string
	Category int
}

// CatalogService reads products, categories and store locations from
// the remote API.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Products fetches the product list with the given filters applied.
func (s *CatalogService) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	start := time.Now()

	req := http.Get(apiURL("/products")).
		Query("search", q.Search).
		Query("brand", q.Brand).
		Timeout(apiTimeout).
		WithContext(ctx)
	if q.Promo {
		req.Query("promo", "1")
	}
	if q.OnSale {
		req.Query("on_sale", "1")
	}
	if q.Category > 0 {
		req.Query("category", strconv.Itoa(q.Category))
	}

	resp, err := req.Send()
	observe("products", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch products: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var products []models.Product
	if err := decodePayload(resp, &products); err != nil {
		return nil, err
	}
	resolveProductImages(products)
	return products, nil
}

// ProductByID fetches a single product.
func (s *CatalogService) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/products/" + strconv.Itoa(id))).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("product", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch product %d: %w", id, err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var product models.Product
	if err := decodePayload(resp, &product); err != nil {
		return nil, err
	}
	product.Image = assets.URL(product.Image)
	return &product, nil
}

// Categories fetches the flat category list.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/categories")).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("categories", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch categories: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var categories []models.Category
	if err := decodePayload(resp, &categories); err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Image = assets.URL(categories[i].Image)
	}
	return categories, nil
}

// CategoryTree arranges a flat category list into root categories with
// their children attached. Input order is preserved at both levels.
func CategoryTree(flat []models.Category) []models.Category {
	byID := make(map[int]*models.Category, len(flat))
	var roots []*models.Category

	for i := range flat {
		c := flat[i]
		c.Children = nil
		byID[c.ID] = &c
		if c.IsRoot() {
			roots = append(roots, byID[c.ID])
		}
	}
	for i := range flat {
		c := flat[i]
		if c.IsRoot() {
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Children = append(parent.Children, *byID[c.ID])
		}
	}

	tree := make([]models.Category, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, *r)
	}
	return tree
}

// RemoteBrands fetches the brand list from the remote API. Brand
// aggregation with the bundled list lives in BrandService.
func (s *CatalogService) RemoteBrands(ctx context.Context) ([]models.Brand, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/brands")).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("brands", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch brands: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	// The API exposes the logo under either "logo" or "image".
	var raw []struct {
		Name  string `json:"name"`
		Logo  string `json:"logo"`
		Image string `json:"image"`
	}
	if err := decodePayload(resp, &raw); err != nil {
		return nil, err
	}

	brands := make([]models.Brand, 0, len(raw))
	for _, b := range raw {
		logo := b.Logo
		if logo == "" {
			logo = b.Image
		}
		brands = append(brands, models.Brand{Name: b.Name, Logo: logo})
	}
	return brands, nil
}

// Locations fetches the physical store locations shown on the home map.
func (s *CatalogService) Locations(ctx context.Context) ([]models.Location, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/locations")).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("locations", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch locations: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var locations []models.Location
	if err := decodePayload(resp, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func resolveProductImages(products []models.Product) {
	for i := range products {
		products[i].Image = assets.URL(products[i].Image)
	}
}
