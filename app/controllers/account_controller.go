package controllers

import (
	"errors"
	"net/http"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/bind"
	"github.com/electro05/storefront/pkg/middleware"
	"github.com/electro05/storefront/pkg/response"
	"github.com/electro05/storefront/pkg/session"
	"github.com/electro05/storefront/pkg/validate"
)

// AccountController handles sign-in, sign-out and profile mutations.
type AccountController struct {
	account *services.AccountService
}

func NewAccountController() *AccountController {
	return &AccountController{account: services.NewAccountService()}
}

// Login forwards credentials to the remote API and, on success, binds
// the issued token and user record to the visitor session.
func (c *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.account.Login(r.Context(), input)
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			response.Error(w, http.StatusUnauthorized, "Identifiants incorrects")
			return
		}
		fail(w, r, err)
		return
	}

	state := services.NewState(session.FromCtx(r))
	state.Login(token, *user)
	if err := state.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": user})
}

// Logout wipes the visitor session.
func (c *AccountController) Logout(w http.ResponseWriter, r *http.Request) {
	state := services.NewState(session.FromCtx(r))
	state.Logout()
	if err := state.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Déconnecté")
}

// UpdateProfile validates the edit locally, forwards it, and refreshes
// the session copy of the user. Server field errors merge into the
// same map shape the local validator produces.
func (c *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var input models.ProfileInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.account.UpdateProfile(r.Context(), token, input)
	if err != nil {
		var verrs services.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationError(w, validate.Merge(nil, verrs))
			return
		}
		fail(w, r, err)
		return
	}

	state := services.NewState(session.FromCtx(r))
	state.SetUser(*user)
	if err := state.Session().Save(w); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, user)
}

// ChangePassword verifies the confirmation locally before handing the
// change to the remote API, which checks the current password.
func (c *AccountController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var input models.PasswordInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.account.ChangePassword(r.Context(), token, input); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Mot de passe mis à jour")
}
