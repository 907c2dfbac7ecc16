// Package services holds the storefront business logic: the remote API
// client wrappers plus the client-side concerns the storefront owns
// (brand aggregation, promo gating, hero rotation, order tracking).
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/electro05/storefront/config"
	"github.com/electro05/storefront/pkg/http"
	"github.com/electro05/storefront/pkg/metrics"
)

// ErrOrderNotFound is returned when the remote API has no order with
// the requested number.
var ErrOrderNotFound = errors.New("services: order not found")

// APIError is a non-2xx response from the remote API that carried a
// usable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("services: api returned %d: %s", e.StatusCode, e.Message)
}

// ValidationErrors are field-level errors returned by the remote API on
// 422 responses. Keys are input field names.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("services: validation failed on %d field(s)", len(v))
}

const apiTimeout = 10 * time.Second

// apiURL joins a path onto the configured remote API base.
func apiURL(path string) string {
	return config.APIBaseURL() + path
}

// decodePayload normalizes the remote API's two response shapes. Most
// endpoints wrap the payload as {"data": ...} but a few return it bare;
// one decoder handles both so no call site branches per endpoint.
func decodePayload(resp *http.Response, dest interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Raw, &envelope); err == nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, dest); err != nil {
			return fmt.Errorf("services: decode payload: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(resp.Raw, dest); err != nil {
		return fmt.Errorf("services: decode payload: %w", err)
	}
	return nil
}

// apiFailure converts a non-2xx response into the matching error type.
// 422 bodies with an "errors" object become ValidationErrors; anything
// else becomes an *APIError with the upstream message when present.
func apiFailure(resp *http.Response) error {
	var body struct {
		Message string                 `json:"message"`
		Errors  map[string]interface{} `json:"errors"`
	}
	// Best effort: an unparseable error body still yields an APIError.
	_ = json.Unmarshal(resp.Raw, &body)

	if resp.StatusCode == 422 && len(body.Errors) > 0 {
		verrs := make(ValidationErrors, len(body.Errors))
		for field, v := range body.Errors {
			verrs[field] = firstMessage(v)
		}
		return verrs
	}

	msg := body.Message
	if msg == "" {
		msg = "requête refusée par le serveur"
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// firstMessage extracts a printable message from a Laravel-style error
// value, which is either a string or an array of strings.
func firstMessage(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return "champ invalide"
}

// observe records upstream call metrics for one endpoint.
func observe(endpoint string, start time.Time, err error) {
	metrics.ObserveUpstream(endpoint, start, err)
}
