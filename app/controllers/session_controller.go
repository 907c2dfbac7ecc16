package controllers

import (
	"net/http"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/bind"
	"github.com/electro05/storefront/pkg/event"
	"github.com/electro05/storefront/pkg/response"
	"github.com/electro05/storefront/pkg/session"
)

// SessionController exposes the per-visitor state: cart, wishlist and
// display preferences.
type SessionController struct {
	catalog *services.CatalogService
}

func NewSessionController() *SessionController {
	return &SessionController{catalog: services.NewCatalogService()}
}

func state(r *http.Request) *services.State {
	return services.NewState(session.FromCtx(r))
}

// Show returns the whole session snapshot in one call so the rendering
// layer can hydrate from a single request.
func (c *SessionController) Show(w http.ResponseWriter, r *http.Request) {
	st := state(r)
	user, authed := st.User()

	payload := map[string]interface{}{
		"cart":           st.Cart(),
		"wishlist":       st.Wishlist(),
		"theme":          st.Theme(),
		"language":       st.Language(),
		"promo_unlocked": st.PromoUnlocked(),
		"authenticated":  authed,
	}
	if authed {
		payload["user"] = user
	}
	response.Success(w, payload)
}

// ─── Cart ─────────────────────────────────────────────────────────────────────

// Cart returns the current cart with totals.
func (c *SessionController) Cart(w http.ResponseWriter, r *http.Request) {
	cart := state(r).Cart()
	response.Success(w, map[string]interface{}{
		"items": cart.Items,
		"total": cart.Total(),
		"count": cart.Count(),
	})
}

// AddToCart looks the product up so name, price and image come from
// the catalog, never from the client, then merges it into the cart.
func (c *SessionController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var input models.CartItemInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.ProductByID(r.Context(), input.ProductID)
	if err != nil {
		fail(w, r, err)
		return
	}

	st := state(r)
	st.AddToCart(models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  input.Quantity,
	})
	if err := st.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	event.FireAsync("cart.changed", st.Cart().Count())

	response.Success(w, st.Cart())
}

// UpdateCartItem pins a cart line to an exact quantity.
func (c *SessionController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Identifiant produit invalide")
		return
	}

	var input struct {
		Quantity int `json:"quantity" validate:"required,gte=0"`
	}
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st := state(r)
	st.SetCartQuantity(id, input.Quantity)
	if err := st.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, st.Cart())
}

// RemoveFromCart drops a line.
func (c *SessionController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Identifiant produit invalide")
		return
	}

	st := state(r)
	st.RemoveFromCart(id)
	if err := st.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, st.Cart())
}

// ─── Wishlist ─────────────────────────────────────────────────────────────────

// Wishlist returns the saved product ids.
func (c *SessionController) Wishlist(w http.ResponseWriter, r *http.Request) {
	response.Success(w, state(r).Wishlist())
}

// ToggleWishlist flips a product's membership and reports the result.
func (c *SessionController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID int `json:"product_id" validate:"required,gte=1"`
	}
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st := state(r)
	saved := st.ToggleWishlist(input.ProductID)
	if err := st.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"saved":    saved,
		"wishlist": st.Wishlist(),
	})
}

// ─── Preferences ──────────────────────────────────────────────────────────────

// SetTheme stores the theme preference.
func (c *SessionController) SetTheme(w http.ResponseWriter, r *http.Request) {
	c.setPreference(w, r, "theme")
}

// SetLanguage stores the language preference.
func (c *SessionController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	c.setPreference(w, r, "language")
}

func (c *SessionController) setPreference(w http.ResponseWriter, r *http.Request, which string) {
	var input models.PreferenceInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st := state(r)
	switch which {
	case "theme":
		if input.Theme == "" {
			response.Error(w, http.StatusBadRequest, "Thème manquant")
			return
		}
		st.SetTheme(input.Theme)
	case "language":
		if input.Language == "" {
			response.Error(w, http.StatusBadRequest, "Langue manquante")
			return
		}
		st.SetLanguage(input.Language)
	}

	if err := st.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{
		"theme":    st.Theme(),
		"language": st.Language(),
	})
}
