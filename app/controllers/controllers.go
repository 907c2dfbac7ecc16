// Package controllers holds the HTTP handlers. Every handler follows
// the same shape: bind and validate the input, call the service with
// the request context, write the response envelope.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/logger"
	"github.com/electro05/storefront/pkg/response"
)

// fail maps a service error onto the response envelope. Field errors
// keep their 422 shape; upstream refusals keep their status; transport
// failures surface as 502 because the storefront itself is healthy.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs services.ValidationErrors
	if errors.As(err, &verrs) {
		response.ValidationError(w, verrs)
		return
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		response.Error(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	logger.WithCtx(r.Context()).Error("upstream call failed", "error", err)
	response.Error(w, http.StatusBadGateway, "Service momentanément indisponible")
}

// intParam reads a chi URL parameter as an int.
func intParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
