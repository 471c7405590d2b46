package handlers

import (
	"net/http"
	"time"

	"github.com/logitrack/logitrack/pkg/httpx"
	pkgvalidator "github.com/logitrack/logitrack/pkg/validator"
)

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"     example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-06-01T13:00:00Z"`
} // @name LoginResponse

// Login exchanges credentials for a bearer token.
//
//	@Summary		Login
//	@Description	Returns a token valid for one hour. Unknown emails and wrong passwords fail identically.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CredentialsRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}
	tok, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, LoginResponse{Token: tok.Value, ExpiresAt: tok.ExpiresAt})
}
