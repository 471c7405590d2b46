package handlers

import (
	"github.com/logitrack/logitrack/pkg/errhttp"
	appsvcs "github.com/logitrack/logitrack/services/identity/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication failed: invalid email or password"`
} // @name AuthErrorResponse

// Handlers serves the /auth endpoints.
type Handlers struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// New returns Handlers backed by the given services.
func New(svc *appsvcs.Services, errs errhttp.Writer) *Handlers {
	return &Handlers{svc: svc, errs: errs}
}

// CredentialsRequest is the request body for register and login.
type CredentialsRequest struct {
	Email    string `json:"email"    validate:"required,notblank,max=254" example:"manager@logitrack.com"`
	Password string `json:"password" validate:"required,max=128"          example:"Passw0rd!"`
} // @name CredentialsRequest
