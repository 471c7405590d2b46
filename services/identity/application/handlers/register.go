package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
	pkgvalidator "github.com/logitrack/logitrack/pkg/validator"
)

// Register creates an account.
//
//	@Summary		Register
//	@Description	Creates an account. Passwords need 6 characters including a digit, a lowercase and an uppercase letter and a symbol.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CredentialsRequest	true	"Credentials"
//	@Success		201		{object}	services.RegisterResult
//	@Failure		400		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}
	res, err := h.svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, res)
}
