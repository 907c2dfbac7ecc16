package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/http"
)

// AdminService forwards category management calls to the remote API on
// behalf of an authenticated admin. The upstream expects multipart
// form-data because a category may carry an image, and takes updates
// as POST /categories/{id}.
type AdminService struct{}

func NewAdminService() *AdminService {
	return &AdminService{}
}

// CategoryUpload is the multipart payload of a create or update.
type CategoryUpload struct {
	Name        string
	Slug        string
	Description string
	ParentID    *int
	ImageName   string
	Image       []byte
}

// CreateCategory creates a category and returns the stored record.
func (s *AdminService) CreateCategory(ctx context.Context, token string, up CategoryUpload) (*models.Category, error) {
	return s.saveCategory(ctx, token, apiURL("/categories"), "create_category", up)
}

// UpdateCategory updates an existing category.
func (s *AdminService) UpdateCategory(ctx context.Context, token string, id int, up CategoryUpload) (*models.Category, error) {
	return s.saveCategory(ctx, token, apiURL("/categories/"+strconv.Itoa(id)), "update_category", up)
}

// DeleteCategory removes a category.
func (s *AdminService) DeleteCategory(ctx context.Context, token string, id int) error {
	start := time.Now()

	resp, err := http.Delete(apiURL("/categories/" + strconv.Itoa(id))).
		Bearer(token).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("delete_category", start, err)
	if err != nil {
		return fmt.Errorf("services: delete category %d: %w", id, err)
	}
	if !resp.OK() {
		return apiFailure(resp)
	}
	return nil
}

func (s *AdminService) saveCategory(ctx context.Context, token, url, endpoint string, up CategoryUpload) (*models.Category, error) {
	start := time.Now()

	req := http.Post(url).
		Bearer(token).
		Field("name", up.Name).
		Field("slug", up.Slug).
		Field("description", up.Description).
		Timeout(apiTimeout).
		WithContext(ctx)
	if up.ParentID != nil {
		req.Field("parent_id", strconv.Itoa(*up.ParentID))
	}
	if len(up.Image) > 0 {
		req.File("image", up.ImageName, up.Image)
	}

	resp, err := req.Send()
	observe(endpoint, start, err)
	if err != nil {
		return nil, fmt.Errorf("services: save category: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var category models.Category
	if err := decodePayload(resp, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
