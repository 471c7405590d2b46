package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/logger"
	identitydomain "github.com/logitrack/logitrack/services/identity/domain"
	"github.com/logitrack/logitrack/services/identity/domain/models"
	"github.com/logitrack/logitrack/services/identity/domain/repositories"
	domainsvcs "github.com/logitrack/logitrack/services/identity/domain/services"
)

// SeedRolesMessage is the body SeedRoles reports on success.
const SeedRolesMessage = "Roles seeded."

// TokenIssuer signs credentials for an authenticated identity.
type TokenIssuer interface {
	GenerateToken(id auth.Identity) (auth.Token, error)
}

// RegisterResult is returned by Register.
type RegisterResult struct {
	Email   string `json:"email"   example:"manager@logitrack.com"`
	Message string `json:"message" example:"User registered successfully!"`
} // @name RegisterResult

// AuthService registers users, logs them in and seeds roles.
type AuthService struct {
	repo   repositories.UserRepository
	tokens TokenIssuer
	log    logger.Logger
	now    func() time.Time
}

// NewAuthService returns an AuthService.
func NewAuthService(repo repositories.UserRepository, tokens TokenIssuer, log logger.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log.With("service", "identity"), now: time.Now}
}

// Register creates an account. Malformed emails, taken emails and weak
// passwords fail with a validation error and store nothing.
func (s *AuthService) Register(ctx context.Context, email, password string) (RegisterResult, error) {
	addr, err := models.NewEmail(email)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %w", identitydomain.ErrInvalidEmail, err)
	}
	if err := auth.CheckPasswordPolicy(password); err != nil {
		return RegisterResult{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return RegisterResult{}, err
	}

	user := models.NewUser(addr, hash, s.now())
	if err := s.repo.Create(ctx, user); err != nil {
		return RegisterResult{}, err
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return RegisterResult{Email: addr.String(), Message: "User registered successfully!"}, nil
}

// Login verifies credentials and issues a token carrying the user's roles.
// An unknown email and a wrong password fail identically, and both run one
// password hash comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.Token, error) {
	user, err := s.repo.FindByEmail(ctx, models.NormalizeEmail(email))
	if err != nil && !errors.Is(err, identitydomain.ErrUserNotFound) {
		return auth.Token{}, fmt.Errorf("find user: %w", err)
	}

	var hash string
	if user != nil {
		hash = user.PasswordHash
	}
	ok, err := auth.CheckPassword(hash, password)
	if err != nil {
		return auth.Token{}, err
	}
	if !ok {
		s.log.WarnContext(ctx, "login rejected")
		return auth.Token{}, identitydomain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(auth.Identity{
		UserID: user.ID.String(),
		Email:  user.Email.String(),
		Roles:  user.Roles,
	})
	if err != nil {
		return auth.Token{}, fmt.Errorf("issue token: %w", err)
	}
	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

// SeedRoles makes sure every known role exists and grants the default
// accounts their roles when they have registered. Repeated calls change
// nothing.
func (s *AuthService) SeedRoles(ctx context.Context) (string, error) {
	caller, err := auth.PrincipalFromCtx(ctx)
	if err != nil {
		return "", err
	}

	if err := s.repo.EnsureRoles(ctx, auth.Roles); err != nil {
		return "", fmt.Errorf("ensure roles: %w", err)
	}

	for _, a := range domainsvcs.DefaultRoleAssignments() {
		added, err := s.repo.AssignRole(ctx, models.NormalizeEmail(a.Email), a.Role, caller.Email)
		if err != nil {
			return "", fmt.Errorf("assign %s: %w", a.Role, err)
		}
		if added {
			s.log.InfoContext(ctx, "role granted", "email", a.Email, "role", a.Role)
		}
	}
	return SeedRolesMessage, nil
}
