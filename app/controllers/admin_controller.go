package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/middleware"
	"github.com/electro05/storefront/pkg/response"
	"github.com/electro05/storefront/pkg/validate"
)

// Uploaded category images are capped well below the body limit.
const maxCategoryImage = 2 << 20 // 2 MB

// AdminController forwards category management to the remote API.
// Routes using it sit behind the auth middleware with role=admin.
type AdminController struct {
	admin *services.AdminService
}

func NewAdminController() *AdminController {
	return &AdminController{admin: services.NewAdminService()}
}

// CreateCategory accepts a multipart form and forwards it.
func (c *AdminController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	up, errs, err := c.readUpload(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.admin.CreateCategory(r.Context(), token, up)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, category)
}

// UpdateCategory accepts a multipart form and forwards it.
func (c *AdminController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}
	id, ok := intParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Identifiant catégorie invalide")
		return
	}

	up, errs, err := c.readUpload(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.admin.UpdateCategory(r.Context(), token, id, up)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, category)
}

// DeleteCategory forwards a delete.
func (c *AdminController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}
	id, ok := intParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Identifiant catégorie invalide")
		return
	}

	if err := c.admin.DeleteCategory(r.Context(), token, id); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Catégorie supprimée")
}

// readUpload parses the multipart form into a CategoryUpload and runs
// the same field rules the JSON inputs use.
func (c *AdminController) readUpload(r *http.Request) (services.CategoryUpload, map[string]string, error) {
	var up services.CategoryUpload

	if err := r.ParseMultipartForm(maxCategoryImage); err != nil {
		return up, nil, err
	}

	up.Name = r.FormValue("name")
	up.Slug = r.FormValue("slug")
	up.Description = r.FormValue("description")
	if raw := r.FormValue("parent_id"); raw != "" {
		if pid, err := strconv.Atoi(raw); err == nil {
			up.ParentID = &pid
		}
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(io.LimitReader(file, maxCategoryImage))
		if err != nil {
			return up, nil, err
		}
		up.ImageName = header.Filename
		up.Image = content
	}

	input := models.CategoryInput{
		Name:        up.Name,
		Slug:        up.Slug,
		ParentID:    up.ParentID,
		Description: up.Description,
	}
	return up, validate.Struct(&input), nil
}
