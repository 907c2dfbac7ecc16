package controllers

import (
	"net/http"
	"strconv"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/bind"
	"github.com/electro05/storefront/pkg/event"
	"github.com/electro05/storefront/pkg/response"
	"github.com/electro05/storefront/pkg/session"
)

// PromotionsController serves the gated promotions page.
type PromotionsController struct {
	catalog *services.CatalogService
	gate    *services.PromoGate
}

func NewPromotionsController(gate *services.PromoGate) *PromotionsController {
	return &PromotionsController{
		catalog: services.NewCatalogService(),
		gate:    gate,
	}
}

// Index returns the promo products this session may see, plus the root
// categories of the full promo set for the filter chips. ?category=
// narrows to one root category.
func (c *PromotionsController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Products(r.Context(), services.ProductQuery{Promo: true})
	if err != nil {
		fail(w, r, err)
		return
	}

	state := services.NewState(session.FromCtx(r))
	categoryID := 0
	if cat, err := strconv.Atoi(r.URL.Query().Get("category")); err == nil {
		categoryID = cat
	}

	response.Success(w, map[string]interface{}{
		"unlocked":   state.PromoUnlocked(),
		"products":   c.gate.Visible(products, state.PromoUnlocked(), categoryID),
		"categories": services.PromoCategories(products),
	})
}

// Unlock checks a submitted code. A correct code flips the session's
// one-way unlock flag; a wrong one changes nothing and says so.
func (c *PromotionsController) Unlock(w http.ResponseWriter, r *http.Request) {
	var input models.UnlockInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	state := services.NewState(session.FromCtx(r))
	if state.PromoUnlocked() {
		response.Success(w, map[string]interface{}{"unlocked": true})
		return
	}

	if !c.gate.TryUnlock(input.Code) {
		response.Error(w, http.StatusForbidden, "Code incorrect. Réessayez.")
		return
	}

	state.UnlockPromos()
	if err := state.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	event.FireAsync("promo.unlocked", state.Session().ID())

	response.Success(w, map[string]interface{}{"unlocked": true})
}
