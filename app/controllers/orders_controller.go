package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/middleware"
	"github.com/electro05/storefront/pkg/response"
)

// OrdersController serves order tracking and order history.
type OrdersController struct {
	orders *services.OrderService
}

func NewOrdersController() *OrdersController {
	return &OrdersController{orders: services.NewOrderService()}
}

// Tracking resolves an order reference and returns the timeline
// payload. The reference accepts both plain ids and the "#ECO-000042"
// form. An unknown order is not an error envelope: the page renders
// the inline message and drops any previously shown result, so the
// payload carries found=false instead.
func (c *OrdersController) Tracking(w http.ResponseWriter, r *http.Request) {
	id, ok := models.ParseOrderRef(chi.URLParam(r, "ref"))
	if !ok {
		response.Success(w, notFoundPayload())
		return
	}

	payload, err := c.orders.Tracking(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			response.Success(w, notFoundPayload())
			return
		}
		fail(w, r, err)
		return
	}

	payload["found"] = true
	response.Success(w, payload)
}

func notFoundPayload() map[string]interface{} {
	return map[string]interface{}{
		"found":   false,
		"message": "Numéro de commande introuvable. Veuillez vérifier et réessayer.",
	}
}

// MyOrders returns the authenticated customer's order history.
func (c *OrdersController) MyOrders(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.orders.MyOrders(r.Context(), token)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, orders)
}
