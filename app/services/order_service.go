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

// OrderService reads customer orders from the remote API.
type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// OrderByID fetches one order for tracking. A 404 maps to
// ErrOrderNotFound so the handler can render the inline "introuvable"
// payload instead of an error envelope.
func (s *OrderService) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/orders/" + strconv.Itoa(id))).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("order", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch order %d: %w", id, err)
	}
	if resp.StatusCode == 404 {
		return nil, ErrOrderNotFound
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var order models.Order
	if err := decodePayload(resp, &order); err != nil {
		return nil, err
	}
	resolveOrderImages(&order)
	return &order, nil
}

// MyOrders fetches the authenticated customer's order history.
func (s *OrderService) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	start := time.Now()

	resp, err := http.Get(apiURL("/my-orders")).
		Bearer(token).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("my_orders", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: fetch my orders: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var orders []models.Order
	if err := decodePayload(resp, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		resolveOrderImages(&orders[i])
	}
	return orders, nil
}

// Tracking assembles the tracking view payload for one order: the
// timeline, the status line and the customer-facing reference. A
// cancelled order keeps all steps upcoming and raises the cancelled
// flag so the view can show a distinct banner.
func (s *OrderService) Tracking(ctx context.Context, id int) (map[string]interface{}, error) {
	order, err := s.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	delivery := order.DeliveryDate
	if delivery == "" {
		delivery = "Sous 2 à 3 jours"
	}

	return map[string]interface{}{
		"order":         order,
		"reference":     order.Ref(),
		"steps":         TrackingSteps(order.Status),
		"message":       StatusMessage(order.Status),
		"delivery_date": delivery,
		"cancelled":     order.Status == models.StatusCancelled,
	}, nil
}

func resolveOrderImages(order *models.Order) {
	for i := range order.Items {
		if p := order.Items[i].Product; p != nil {
			p.Image = assets.URL(p.Image)
		}
	}
}
