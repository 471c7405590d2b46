package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// SeedRoles creates the known roles and grants them to the default accounts.
//
//	@Summary		Seed roles
//	@Description	Idempotent. Grants Manager to manager@logitrack.com and Staff to staff@logitrack.com when those accounts exist.
//	@Tags			auth
//	@Produce		plain
//	@Security		BearerAuth
//	@Success		200	{string}	string	"Roles seeded."
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/seed-roles [get]
func (h *Handlers) SeedRoles(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.Auth.SeedRoles(r.Context())
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.Text(w, http.StatusOK, msg)
}
