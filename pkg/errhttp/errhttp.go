// Package errhttp maps error kinds from pkg/apperr to HTTP status codes.
// Domain sentinels wrap a kind, so new domain errors need no change here.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/httpx"
)

// Writer writes error responses, masking 5xx details in production.
type Writer struct {
	Production bool
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func (ew Writer) WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, ew.Production))
}

// WriteError writes err without production masking.
func WriteError(w http.ResponseWriter, err error) {
	Writer{}.WriteError(w, err)
}

// StatusOf returns the HTTP status code for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, apperr.ErrAuthentication):
		return http.StatusUnauthorized // 401
	case errors.Is(err, apperr.ErrAuthorization):
		return http.StatusForbidden // 403
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}
