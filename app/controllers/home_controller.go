package controllers

import (
	"net/http"
	"sync"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/collection"
	"github.com/electro05/storefront/pkg/logger"
	"github.com/electro05/storefront/pkg/response"
)

// HomeController assembles the home page payload.
type HomeController struct {
	catalog *services.CatalogService
	brands  *services.BrandService
	rotator *services.HeroRotator
}

func NewHomeController(rotator *services.HeroRotator) *HomeController {
	return &HomeController{
		catalog: services.NewCatalogService(),
		brands:  services.NewBrandService(),
		rotator: rotator,
	}
}

// Index fetches products and store locations together and returns the
// home payload. The two upstream calls run concurrently and are
// awaited as a pair; a locations failure degrades to an empty map
// section rather than failing the page.
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg        sync.WaitGroup
		products  []models.Product
		locations []models.Location
		prodErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, prodErr = c.catalog.Products(ctx, services.ProductQuery{})
	}()
	go func() {
		defer wg.Done()
		var err error
		locations, err = c.catalog.Locations(ctx)
		if err != nil {
			logger.WithCtx(ctx).Warn("home: locations unavailable", "error", err)
		}
	}()
	wg.Wait()

	if prodErr != nil {
		fail(w, r, prodErr)
		return
	}

	featured := collection.Filter(products, func(p models.Product) bool {
		return p.IsFeatured
	})

	payload := map[string]interface{}{
		"products":  products,
		"featured":  featured,
		"locations": locations,
		"brands":    services.Marquee(c.brands.Brands(ctx)),
	}
	if frame, ok := c.rotator.Current(); ok {
		payload["hero"] = frame
	}

	response.Success(w, payload)
}

// Health answers the liveness probe.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}
