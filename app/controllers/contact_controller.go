package controllers

import (
	"net/http"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/bind"
	"github.com/electro05/storefront/pkg/response"
)

// ContactController handles the contact form.
type ContactController struct {
	contact *services.ContactService
}

func NewContactController() *ContactController {
	return &ContactController{contact: services.NewContactService()}
}

// Send validates the message locally, forwards it, and returns the
// confirmation text the API answered with.
func (c *ContactController) Send(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	msg, err := c.contact.Send(r.Context(), input)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, msg)
}
