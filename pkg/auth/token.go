package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/config"
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = fmt.Errorf("%w: invalid token", apperr.ErrAuthentication)

// Claims is the JWT payload: registered claims plus the user id and roles.
type Claims struct {
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the user a token is issued for.
type Identity struct {
	UserID string
	Email  string
	Roles  []string
}

// Token is a signed credential and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenConfig holds the signing key and claim expectations.
type TokenConfig struct {
	Key      []byte
	Issuer   string
	Audience string
	Lifetime time.Duration
}

// TokenConfigFrom reads the token settings from cfg.
func TokenConfigFrom(cfg *config.Config) TokenConfig {
	return TokenConfig{
		Key:      []byte(cfg.JWTKey),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Lifetime: cfg.TokenLifetime,
	}
}

// TokenService issues and validates HMAC-SHA256 bearer tokens.
type TokenService struct {
	cfg    TokenConfig
	now    func() time.Time
	parser *jwt.Parser
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithTokenClock replaces time.Now for issuing and validating.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService returns a TokenService. An empty key is a configuration
// error; callers at startup must treat it as fatal.
func NewTokenService(cfg TokenConfig, opts ...TokenOption) (*TokenService, error) {
	if len(strings.TrimSpace(string(cfg.Key))) == 0 {
		return nil, fmt.Errorf("%w: token signing key is not set", apperr.ErrConfiguration)
	}
	if cfg.Lifetime <= 0 {
		return nil, fmt.Errorf("%w: token lifetime must be positive", apperr.ErrConfiguration)
	}
	s := &TokenService{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.Audience))
	}
	s.parser = jwt.NewParser(parserOpts...)
	return s, nil
}

// GenerateToken signs a token for id valid for the configured lifetime.
func (s *TokenService) GenerateToken(id Identity) (Token, error) {
	now := s.now()
	exp := now.Add(s.cfg.Lifetime)

	claims := Claims{
		UserID: id.UserID,
		Roles:  id.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			ID:        uuid.NewString(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Key)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp}, nil
}

// ValidateToken checks signature, algorithm, expiry, issuer and audience and
// returns the principal the token was issued for. Failures wrap
// ErrInvalidToken.
func (s *TokenService) ValidateToken(raw string) (Principal, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.cfg.Key, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %s", ErrInvalidToken, reason(err))
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Principal{
		UserID:  claims.UserID,
		Email:   claims.Subject,
		TokenID: claims.ID,
		Roles:   claims.Roles,
	}, nil
}

// reason returns a short client-safe cause for a parse failure.
func reason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "issuer mismatch"
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return "audience mismatch"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "rejected"
	}
}
