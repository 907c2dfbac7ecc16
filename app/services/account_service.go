package services

import (
	"context"
	"fmt"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/http"
)

// AccountService forwards profile mutations to the remote API. The API
// is authoritative: the storefront validates locally for fast feedback
// but the server's verdict wins.
type AccountService struct{}

func NewAccountService() *AccountService {
	return &AccountService{}
}

// Login exchanges credentials for an API token and the user record.
func (s *AccountService) Login(ctx context.Context, input models.LoginInput) (string, *models.User, error) {
	start := time.Now()

	resp, err := http.Post(apiURL("/login")).
		Body(input).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("login", start, err)
	if err != nil {
		return "", nil, fmt.Errorf("services: login: %w", err)
	}
	if !resp.OK() {
		return "", nil, apiFailure(resp)
	}

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := decodePayload(resp, &body); err != nil {
		return "", nil, err
	}
	return body.Token, &body.User, nil
}

// UpdateProfile sends the edited profile and returns the updated user
// record the API echoes back.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, input models.ProfileInput) (*models.User, error) {
	start := time.Now()

	resp, err := http.Put(apiURL("/user")).
		Bearer(token).
		Body(input).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("update_profile", start, err)
	if err != nil {
		return nil, fmt.Errorf("services: update profile: %w", err)
	}
	if !resp.OK() {
		return nil, apiFailure(resp)
	}

	var user models.User
	if err := decodePayload(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword submits a password change. The current password is
// verified remotely; a mismatch comes back as ValidationErrors on the
// current_password field.
func (s *AccountService) ChangePassword(ctx context.Context, token string, input models.PasswordInput) error {
	start := time.Now()

	resp, err := http.Post(apiURL("/user/change-password")).
		Bearer(token).
		Body(input).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("change_password", start, err)
	if err != nil {
		return fmt.Errorf("services: change password: %w", err)
	}
	if !resp.OK() {
		return apiFailure(resp)
	}
	return nil
}
