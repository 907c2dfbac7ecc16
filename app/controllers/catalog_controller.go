package controllers

import (
	"net/http"
	"strconv"

	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/response"
)

// CatalogController serves products, categories and brands.
type CatalogController struct {
	catalog *services.CatalogService
	brands  *services.BrandService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		catalog: services.NewCatalogService(),
		brands:  services.NewBrandService(),
	}
}

// Products lists products with the optional query filters passed
// through to the remote API.
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	q := services.ProductQuery{
		Search: r.URL.Query().Get("search"),
		Brand:  r.URL.Query().Get("brand"),
		Promo:  r.URL.Query().Get("promo") == "1",
		OnSale: r.URL.Query().Get("on_sale") == "1",
	}
	if cat, err := strconv.Atoi(r.URL.Query().Get("category")); err == nil {
		q.Category = cat
	}

	products, err := c.catalog.Products(r.Context(), q)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show returns one product.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Identifiant produit invalide")
		return
	}

	product, err := c.catalog.ProductByID(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Categories returns the two-level category tree.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	flat, err := c.catalog.Categories(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, services.CategoryTree(flat))
}

// Brands returns the merged brand list; ?marquee=1 triples it for the
// seamless scrolling strip.
func (c *CatalogController) Brands(w http.ResponseWriter, r *http.Request) {
	brands := c.brands.Brands(r.Context())
	if r.URL.Query().Get("marquee") == "1" {
		brands = services.Marquee(brands)
	}
	response.Success(w, brands)
}
